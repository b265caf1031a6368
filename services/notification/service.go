package notification

import (
	notificationRepo "quickhub/database/repository/notification"
	"quickhub/models"
	"quickhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultNotificationService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

func itemFromModel(n models.Notification) Item {
	item := Item{
		ID:              n.ID,
		Type:            n.Type,
		Title:           n.Title,
		Message:         n.Message,
		ActionStatus:    n.ActionStatus,
		StatusMessage:   n.StatusMessage,
		RejectionReason: n.RejectionReason,
		BookingID:       n.BookingID,
		IsRead:          n.IsRead,
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       n.UpdatedAt,
	}
	if n.CompanyID != "" {
		name := n.CompanyName
		if name == "" {
			name = "Unknown Company"
		}
		item.Company = &EntityRef{ID: n.CompanyID, Name: name}
	}
	if n.StaffID != "" {
		name := n.StaffName
		if name == "" {
			name = "Unknown Staff"
		}
		item.Staff = &EntityRef{ID: n.StaffID, Name: name}
	}
	return item
}

// List returns the authenticated user's notifications.
func (s *DefaultNotificationService) List(userID string, query ListQuery) ([]Item, int64, error) {
	rows, total, err := s.Repo.List(notificationRepo.ListCriteria{
		UserID: userID,
		Types:  query.Types,
		IsRead: query.IsRead,
		Sort:   query.Sort,
		Skip:   query.Pagination.Skip(),
		Limit:  int64(query.Pagination.Limit),
	})
	if err != nil {
		return nil, 0, utils.NewInternal("Failed to fetch notifications", err)
	}

	items := make([]Item, 0, len(rows))
	for _, n := range rows {
		items = append(items, itemFromModel(n))
	}
	return items, total, nil
}

// MarkAsRead flags one of the user's notifications as read. Re-marking an
// already-read notification is a no-op success.
func (s *DefaultNotificationService) MarkAsRead(notificationID, userID string) (*ReadResult, error) {
	if _, err := uuid.Parse(notificationID); err != nil {
		return nil, utils.NewInvalidInput("Invalid notification ID")
	}

	matched, err := s.Repo.MarkRead(notificationID, userID)
	if err != nil {
		return nil, utils.NewInternal("Failed to mark notification as read", err)
	}
	if !matched {
		return nil, utils.NewNotFound("Notification not found")
	}
	return &ReadResult{ID: notificationID, IsRead: true}, nil
}

// MarkAllAsRead flags every unread notification of the user and returns the
// modified count, which may be zero.
func (s *DefaultNotificationService) MarkAllAsRead(userID string) (int64, error) {
	modified, err := s.Repo.MarkAllRead(userID)
	if err != nil {
		return 0, utils.NewInternal("Failed to mark all notifications as read", err)
	}
	return modified, nil
}

// ListCompany returns the company inbox for a company user. The user's
// company is resolved by matching the account email against company records;
// this linkage is best-effort and documented as a known limitation.
func (s *DefaultNotificationService) ListCompany(userID string, query ListQuery) ([]CompanyItem, int64, error) {
	user, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return nil, 0, utils.NewInternal("Failed to fetch company notifications", err)
	}
	if user == nil || user.UserType != models.UserTypeCompany {
		return nil, 0, utils.NewForbidden("Access denied. Company users only.")
	}

	var companyIDs []string
	if user.Email != "" {
		companies, err := s.CompanyRepo.FindByEmail(user.Email)
		if err != nil {
			return nil, 0, utils.NewInternal("Failed to fetch company notifications", err)
		}
		for _, c := range companies {
			companyIDs = append(companyIDs, c.ID)
		}
	}
	if len(companyIDs) == 0 {
		// Company resolution matches company records by account email; a
		// company user with no match only sees direct notifications.
		s.logger().Warn("No company records match account email",
			zap.String("userId", userID), zap.String("email", user.Email))
	}

	rows, total, err := s.Repo.ListCompany(notificationRepo.CompanyListCriteria{
		UserID:     userID,
		CompanyIDs: companyIDs,
		Types:      query.Types,
		IsRead:     query.IsRead,
		Sort:       query.Sort,
		Skip:       query.Pagination.Skip(),
		Limit:      int64(query.Pagination.Limit),
	})
	if err != nil {
		return nil, 0, utils.NewInternal("Failed to fetch company notifications", err)
	}

	items := make([]CompanyItem, 0, len(rows))
	for _, row := range rows {
		item := CompanyItem{Item: itemFromModel(row.Notification)}
		if row.Customer != nil {
			name := row.Customer.Name
			if name == "" {
				name = "Unknown Customer"
			}
			item.Customer = &CustomerRef{ID: row.Customer.ID, Name: name, Email: row.Customer.Email}
		}
		if row.Booking != nil {
			item.Booking = &BookingRef{
				ID:          row.Booking.ID,
				ReferenceNo: row.Booking.ReferenceNo,
				Service:     row.Booking.Service,
				Status:      row.Booking.Status,
				StartDate:   row.Booking.StartDate,
				EndDate:     row.Booking.EndDate,
			}
		}
		items = append(items, item)
	}
	return items, total, nil
}
