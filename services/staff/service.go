package staff

import (
	"strconv"
	"strings"
	"time"

	staffRepo "quickhub/database/repository/staff"
	"quickhub/models"
	"quickhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recentFeedbackLimit = 6

func (s *DefaultStaffService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

func criteriaFor(query ListQuery, activeOnly bool) staffRepo.ListCriteria {
	return staffRepo.ListCriteria{
		EmploymentType: query.EmploymentType,
		Services:       query.Services,
		MinExp:         query.MinExp,
		MaxExp:         query.MaxExp,
		MinRating:      query.MinRating,
		PriceMin:       query.PriceMin,
		PriceMax:       query.PriceMax,
		CompanyID:      query.CompanyID,
		Search:         strings.TrimSpace(query.Search),
		ActiveOnly:     activeOnly,
		Sort:           query.Sort,
		Skip:           query.Pagination.Skip(),
		Limit:          int64(query.Pagination.Limit),
	}
}

// List returns the company-side staff listing.
func (s *DefaultStaffService) List(query ListQuery) ([]ListItem, int64, error) {
	rows, total, err := s.Repo.List(criteriaFor(query, false))
	if err != nil {
		return nil, 0, utils.NewInternal("Failed to fetch staff", err)
	}

	items := make([]ListItem, 0, len(rows))
	for _, st := range rows {
		items = append(items, ListItem{
			ID:              st.ID,
			Name:            st.Name,
			Avatar:          st.ProfilePicture,
			EmploymentType:  st.EmploymentType,
			HourlyRate:      st.HourlyRate,
			Specializations: emptyIfNil(st.Specializations),
			ExperienceYears: st.ExperienceYears,
			Rating:          st.Rating,
			Phone:           st.Phone,
			IsActive:        st.IsActive,
		})
	}
	return items, total, nil
}

// ListCustomer returns the customer-facing staff listing; only active staff
// are visible.
func (s *DefaultStaffService) ListCustomer(query ListQuery) ([]CustomerListItem, int64, error) {
	rows, total, err := s.Repo.List(criteriaFor(query, true))
	if err != nil {
		return nil, 0, utils.NewInternal("Failed to fetch staff list", err)
	}

	items := make([]CustomerListItem, 0, len(rows))
	for _, st := range rows {
		items = append(items, CustomerListItem{
			ID:              st.ID,
			Name:            st.Name,
			Avatar:          st.ProfilePicture,
			EmploymentType:  st.EmploymentType,
			FeeText:         feeText(st.HourlyRate, st.DailyRate),
			HourlyRate:      st.HourlyRate,
			DailyRate:       st.DailyRate,
			Specializations: emptyIfNil(st.Specializations),
			ExperienceYears: st.ExperienceYears,
			Rating:          st.Rating,
			CompanyID:       st.CompanyID,
			Location:        st.Location,
		})
	}
	return items, total, nil
}

// Create persists a new embedded staff profile and returns its id. Staff
// emails are not unique across the collection.
func (s *DefaultStaffService) Create(input CreateInput) (string, error) {
	if strings.TrimSpace(input.Name) == "" {
		return "", utils.NewInvalidInput("name is required")
	}

	employmentType := input.EmploymentType
	if employmentType == "" {
		employmentType = models.EmploymentFullTime
	}

	now := time.Now()
	st := &models.Staff{
		ID:              uuid.New().String(),
		Name:            strings.TrimSpace(input.Name),
		Email:           strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:           input.Phone,
		ProfilePicture:  input.ProfilePicture,
		Gender:          input.Gender,
		Bio:             input.Bio,
		Description:     input.Description,
		CompanyID:       input.CompanyID,
		HourlyRate:      input.HourlyRate,
		DailyRate:       input.DailyRate,
		EmploymentType:  employmentType,
		Specializations: emptyIfNil(input.Specializations),
		ExperienceYears: input.ExperienceYears,
		IsActive:        input.IsActive == nil || *input.IsActive,
		Location:        input.Location,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.Availability != nil {
		st.Availability = *input.Availability
	}
	ensureSlotIDs(st.Availability.Slots)
	st.NormalizeAvailability()

	if err := s.Repo.Create(st); err != nil {
		return "", utils.NewInternal("Failed to create staff", err)
	}
	return st.ID, nil
}

// Update applies a partial update: absent fields stay unchanged, present
// fields overwrite, and the slots array supports add/remove set operations.
func (s *DefaultStaffService) Update(id string, input UpdateInput) (*models.Staff, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.NewInvalidInput("Invalid staff id")
	}

	st, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, utils.NewInternal("Failed to update staff", err)
	}
	if st == nil {
		return nil, utils.NewNotFound("Staff not found")
	}

	if input.Name != nil {
		st.Name = *input.Name
	}
	if input.Email != nil {
		st.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Phone != nil {
		st.Phone = *input.Phone
	}
	if input.ProfilePicture != nil {
		st.ProfilePicture = *input.ProfilePicture
	}
	if input.Gender != nil {
		st.Gender = *input.Gender
	}
	if input.Bio != nil {
		st.Bio = *input.Bio
	}
	if input.Description != nil {
		st.Description = *input.Description
	}
	if input.CompanyID != nil {
		st.CompanyID = *input.CompanyID
	}
	if input.HourlyRate != nil {
		st.HourlyRate = input.HourlyRate
	}
	if input.DailyRate != nil {
		st.DailyRate = input.DailyRate
	}
	if input.EmploymentType != nil {
		st.EmploymentType = *input.EmploymentType
	}
	if input.Specializations != nil {
		st.Specializations = input.Specializations
	}
	if input.ExperienceYears != nil {
		st.ExperienceYears = *input.ExperienceYears
	}
	if input.IsActive != nil {
		st.IsActive = *input.IsActive
	}
	if input.Location != nil {
		st.Location = input.Location
	}
	if input.Availability != nil {
		st.Availability = *input.Availability
	}
	if input.AvailableHours != nil {
		st.AvailableHours = input.AvailableHours
	}
	if input.AvailableDays != nil {
		st.AvailableDays = input.AvailableDays
	}

	if len(input.SlotsToAdd) > 0 {
		ensureSlotIDs(input.SlotsToAdd)
		st.Availability.Slots = append(st.Availability.Slots, input.SlotsToAdd...)
	}
	if len(input.SlotsToRemove) > 0 && len(st.Availability.Slots) > 0 {
		remove := make(map[string]bool, len(input.SlotsToRemove))
		for _, slotID := range input.SlotsToRemove {
			remove[slotID] = true
		}
		kept := st.Availability.Slots[:0]
		for _, slot := range st.Availability.Slots {
			if !remove[slot.ID] {
				kept = append(kept, slot)
			}
		}
		st.Availability.Slots = kept
	}

	st.NormalizeAvailability()
	st.UpdatedAt = time.Now()

	if err := s.Repo.Replace(st); err != nil {
		return nil, utils.NewInternal("Failed to update staff", err)
	}
	return st, nil
}

// CustomerDetails returns the staff profile shaped for the customer UI,
// including the employing company and recent feedback.
func (s *DefaultStaffService) CustomerDetails(id string) (*CustomerDetail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.NewInvalidInput("Invalid id")
	}

	st, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, utils.NewInternal("Failed to fetch staff details", err)
	}
	if st == nil {
		return nil, utils.NewNotFound("Staff not found")
	}

	detail := &CustomerDetail{
		ID:              st.ID,
		Name:            st.Name,
		Avatar:          st.ProfilePicture,
		EmploymentType:  st.EmploymentType,
		HourlyRate:      st.HourlyRate,
		ExperienceYears: st.ExperienceYears,
		Location:        st.Location,
		Phone:           st.Phone,
		Specializations: emptyIfNil(st.Specializations),
		Bio:             st.Bio,
		Availability:    st.Availability,
		Feedbacks:       []FeedbackItem{},
	}
	if st.Availability.Weekly != nil {
		detail.ShiftInfo = st.Availability.Weekly.ShiftHoursPerDay
	}

	if st.CompanyID != "" {
		company, err := s.CompanyRepo.GetByID(st.CompanyID)
		if err != nil {
			s.logger().Warn("Failed to fetch company for staff details",
				zap.String("staffId", st.ID), zap.String("companyId", st.CompanyID), zap.Error(err))
		} else if company != nil {
			detail.Company = company
		}
	}

	feedbacks, err := s.FeedbackRepo.ListRecentByStaff(st.ID, recentFeedbackLimit)
	if err != nil {
		s.logger().Warn("Failed to fetch recent feedbacks for staff details",
			zap.String("staffId", st.ID), zap.Error(err))
	} else {
		for _, f := range feedbacks {
			detail.Feedbacks = append(detail.Feedbacks, FeedbackItem{
				ID:         f.ID,
				Rating:     f.Rating,
				Comment:    f.Comment,
				AuthorName: f.AuthorName,
				CreatedAt:  f.CreatedAt,
			})
		}
	}

	return detail, nil
}

// CompanyDetails returns the raw company document.
func (s *DefaultStaffService) CompanyDetails(id string) (*models.Company, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.NewInvalidInput("Invalid company id")
	}

	company, err := s.CompanyRepo.GetByID(id)
	if err != nil {
		return nil, utils.NewInternal("Failed to fetch company details", err)
	}
	if company == nil {
		return nil, utils.NewNotFound("Company not found")
	}
	return company, nil
}

func ensureSlotIDs(slots []models.AvailabilitySlot) {
	for i := range slots {
		if slots[i].ID == "" {
			slots[i].ID = uuid.New().String()
		}
	}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func feeText(hourly, daily *float64) string {
	if hourly != nil {
		return "₹ " + strconv.FormatFloat(*hourly, 'f', -1, 64) + "/hr"
	}
	if daily != nil {
		return "₹ " + strconv.FormatFloat(*daily, 'f', -1, 64) + "/day"
	}
	return ""
}
