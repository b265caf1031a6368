package booking

import (
	"strconv"
	"strings"
	"time"

	bookingRepo "quickhub/database/repository/booking"
	"quickhub/models"
	"quickhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const createRetries = 3

func parseDate(value string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CreateBooking validates the request, freezes the fee snapshot and persists
// a Pending booking. A best-effort booking_request notification is emitted to
// the staff's company; its failure never fails the booking.
func (s *DefaultBookingService) CreateBooking(userID string, input CreateBookingInput) (*models.Booking, error) {
	if input.StaffID == "" {
		return nil, utils.NewInvalidInput("Invalid staffId")
	}
	if _, err := uuid.Parse(input.StaffID); err != nil {
		return nil, utils.NewInvalidInput("Invalid staffId")
	}
	if strings.TrimSpace(input.Service) == "" {
		return nil, utils.NewInvalidInput("service is required")
	}
	if input.StartDate == "" || input.EndDate == "" {
		return nil, utils.NewInvalidInput("startDate and endDate are required")
	}

	start, okStart := parseDate(input.StartDate)
	end, okEnd := parseDate(input.EndDate)
	if !okStart || !okEnd {
		return nil, utils.NewInvalidInput("Invalid dates")
	}
	if end.Before(start) {
		return nil, utils.NewInvalidInput("endDate must be >= startDate")
	}

	staff, err := s.StaffRepo.GetByID(input.StaffID)
	if err != nil {
		return nil, utils.NewInternal("Failed to create booking", err)
	}
	if staff == nil || !staff.IsActive {
		return nil, utils.NewNotFound("Staff not found or inactive")
	}
	if len(staff.Specializations) > 0 && !contains(staff.Specializations, input.Service) {
		return nil, utils.NewInvalidInput("Selected staff does not offer this service")
	}

	employmentType := staff.EmploymentType
	if employmentType == "" {
		employmentType = models.EmploymentFullTime
	}
	shiftHours, timeWindow := DeriveShift(staff, employmentType)
	numDays := NumDays(start, end)

	now := time.Now()
	booking := &models.Booking{
		ID:               uuid.New().String(),
		ReferenceNo:      GenerateReferenceNo(now),
		UserID:           userID,
		StaffID:          staff.ID,
		Service:          input.Service,
		EmploymentType:   employmentType,
		ShiftHoursPerDay: shiftHours,
		TimeWindowPerDay: timeWindow,
		StartDate:        start,
		EndDate:          end,
		FeeSnapshot:      ComputeFeeSnapshot(staff, employmentType, shiftHours, numDays),
		Status:           models.BookingPending,
		PaymentStatus:    models.PaymentUnpaid,
		Notes:            input.Notes,
		Location:         input.Location,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	for attempt := 0; ; attempt++ {
		err = s.Repo.Create(booking)
		if err == nil {
			break
		}
		if err == bookingRepo.ErrDuplicateReference && attempt < createRetries-1 {
			booking.ReferenceNo = GenerateReferenceNo(time.Now())
			continue
		}
		return nil, utils.NewInternal("Failed to create booking", err)
	}

	s.notifyCompanyOfRequest(booking, staff)

	return booking, nil
}

// ListCustomerBookings returns a customer's bookings joined with staff
// display fields.
func (s *DefaultBookingService) ListCustomerBookings(userID string, query ListQuery) ([]CustomerBookingItem, int64, error) {
	rows, total, err := s.Repo.ListByCustomer(bookingRepo.CustomerListCriteria{
		UserID:   userID,
		Services: query.Services,
		Statuses: query.Statuses,
		Sort:     query.Sort,
		Skip:     query.Pagination.Skip(),
		Limit:    int64(query.Pagination.Limit),
	})
	if err != nil {
		return nil, 0, utils.NewInternal("Failed to fetch bookings", err)
	}

	items := make([]CustomerBookingItem, 0, len(rows))
	for _, row := range rows {
		item := CustomerBookingItem{
			ID:          row.ID,
			ReferenceNo: row.ReferenceNo,
			Date:        DateRange{Start: row.StartDate, End: row.EndDate},
			Time:        timeLabel(row.Booking),
			Role:        row.Service,
			Status:      row.Status,
			FeeText:     FeeText(row.FeeSnapshot),
			CanPay:      row.Status == models.BookingConfirmed || row.Status == models.BookingCompleted,
			CanReview:   row.Status == models.BookingCompleted && row.Rating == 0,
			Rating:      row.Rating,
		}
		if row.Staff != nil {
			item.Staff = PartyRef{ID: row.Staff.ID, Name: row.Staff.Name, Avatar: row.Staff.ProfilePicture}
		}
		items = append(items, item)
	}
	return items, total, nil
}

// DashboardBookings returns the company dashboard listing.
func (s *DefaultBookingService) DashboardBookings(query DashboardQuery) ([]DashboardBookingItem, int64, error) {
	criteria := bookingRepo.DashboardCriteria{
		Search:   query.Search,
		Statuses: query.Statuses,
		Location: query.Location,
		Sort:     query.Sort,
		Skip:     query.Pagination.Skip(),
		Limit:    int64(query.Pagination.Limit),
	}
	if query.StartDate != "" {
		if t, ok := parseDate(query.StartDate); ok {
			criteria.StartDate = &t
		}
	}
	if query.EndDate != "" {
		if t, ok := parseDate(query.EndDate); ok {
			criteria.EndDate = &t
		}
	}

	rows, total, err := s.Repo.ListDashboard(criteria)
	if err != nil {
		return nil, 0, utils.NewInternal("Failed to fetch dashboard bookings", err)
	}

	items := make([]DashboardBookingItem, 0, len(rows))
	for _, row := range rows {
		item := DashboardBookingItem{
			ID:          row.ID,
			ReferenceNo: row.ReferenceNo,
			Customer:    PartyRef{Name: "Unknown Customer"},
			Staff:       PartyRef{Name: "Unknown Staff"},
			Service:     row.Service,
			Status:      row.Status,
			Location:    "Location not specified",
			DateRange:   DateRange{Start: row.StartDate, End: row.EndDate},
			FeeText:     "Price not set",
		}
		if row.Customer != nil {
			item.Customer = PartyRef{ID: row.Customer.ID, Name: row.Customer.Name, Avatar: row.Customer.ProfilePicture}
		}
		if row.Staff != nil {
			item.Staff = PartyRef{ID: row.Staff.ID, Name: row.Staff.Name, Avatar: row.Staff.ProfilePicture}
		}
		if row.Location != nil && row.Location.Address != "" {
			item.Location = row.Location.Address
		}
		if text := FeeText(row.FeeSnapshot); text != "" {
			item.FeeText = text
		}
		items = append(items, item)
	}
	return items, total, nil
}

// GetBookingDetails composes the booking with its customer and staff records.
func (s *DefaultBookingService) GetBookingDetails(bookingID string) (*BookingDetail, error) {
	if _, err := uuid.Parse(bookingID); err != nil {
		return nil, utils.NewInvalidInput("Invalid booking ID")
	}

	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, utils.NewInternal("Failed to fetch booking details", err)
	}
	if booking == nil {
		return nil, utils.NewNotFound("Booking not found")
	}

	detail := &BookingDetail{
		ID:              booking.ID,
		ReferenceNo:     booking.ReferenceNo,
		Service:         booking.Service,
		Status:          booking.Status,
		StartDate:       booking.StartDate,
		EndDate:         booking.EndDate,
		Location:        booking.Location,
		FeeSnapshot:     booking.FeeSnapshot,
		RejectionReason: booking.RejectionReason,
		RejectedAt:      booking.RejectedAt,
		AcceptedAt:      booking.AcceptedAt,
		Customer:        DetailCustomer{Name: "Unknown Customer", Address: "Address not provided"},
		Staff: DetailStaff{
			Name:            "Unknown Staff",
			Gender:          "Not specified",
			Specializations: []string{},
			EmploymentType:  booking.EmploymentType,
			HourlyRate:      booking.FeeSnapshot.HourlyRate,
			DailyRate:       booking.FeeSnapshot.DailyRate,
			TimeWindow:      booking.TimeWindowPerDay,
		},
	}

	if customer, err := s.UserRepo.GetByID(booking.UserID); err == nil && customer != nil {
		detail.Customer.ID = customer.ID
		detail.Customer.Name = customer.Name
		detail.Customer.Avatar = customer.ProfilePicture
		detail.Customer.Phone = customer.Phone
		if customer.Address != "" {
			detail.Customer.Address = customer.Address
		} else if booking.Location != nil && booking.Location.Address != "" {
			detail.Customer.Address = booking.Location.Address
		}
	}

	if staff, err := s.StaffRepo.GetByID(booking.StaffID); err == nil && staff != nil {
		detail.Staff.ID = staff.ID
		detail.Staff.Name = staff.Name
		detail.Staff.Avatar = staff.ProfilePicture
		detail.Staff.Phone = staff.Phone
		if staff.Gender != "" {
			detail.Staff.Gender = staff.Gender
		}
		if len(staff.Specializations) > 0 {
			detail.Staff.Specializations = staff.Specializations
		}
	}

	return detail, nil
}

// notifyCompanyOfRequest emits the booking_request notification consumed by
// the company inbox. Done best-effort: failures are logged and swallowed.
func (s *DefaultBookingService) notifyCompanyOfRequest(booking *models.Booking, staff *models.Staff) {
	if staff.CompanyID == "" {
		return
	}

	companyName := "Unknown Company"
	if company, err := s.CompanyRepo.GetByID(staff.CompanyID); err == nil && company != nil {
		companyName = company.Name
	}
	customerName := "A customer"
	if customer, err := s.UserRepo.GetByID(booking.UserID); err == nil && customer != nil {
		customerName = customer.Name
	}

	now := time.Now()
	notification := &models.Notification{
		ID:          uuid.New().String(),
		Type:        models.NotificationBookingRequest,
		Title:       "New Booking Request",
		Message:     customerName + " has requested to hire " + staff.Name + " for " + booking.Service + ".",
		BookingID:   booking.ID,
		CompanyID:   staff.CompanyID,
		CompanyName: companyName,
		StaffID:     staff.ID,
		StaffName:   staff.Name,
		IsRead:      false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.NotificationRepo.Create(notification); err != nil {
		s.logger().Warn("Failed to create booking request notification",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

func timeLabel(b models.Booking) string {
	if b.TimeWindowPerDay != "" {
		return b.TimeWindowPerDay
	}
	if b.ShiftHoursPerDay > 0 {
		return strconv.FormatFloat(b.ShiftHoursPerDay, 'f', -1, 64) + " hrs/day"
	}
	return ""
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
