package notificationRepo

import "quickhub/models"

// ListCriteria filters a user's own notifications.
type ListCriteria struct {
	UserID string
	Types  []string
	IsRead *bool
	Sort   string
	Skip   int64
	Limit  int64
}

// CompanyListCriteria filters the company-scoped notification listing. The
// match covers the requesting user's own notifications plus any addressed to
// the companies resolved for that user.
type CompanyListCriteria struct {
	UserID     string
	CompanyIDs []string
	Types      []string
	IsRead     *bool
	Sort       string
	Skip       int64
	Limit      int64
}

// CompanyRow is a notification enriched with its booking and the booking's
// customer.
type CompanyRow struct {
	models.Notification `bson:",inline"`
	Booking             *models.Booking `bson:"booking,omitempty"`
	Customer            *models.User    `bson:"customer,omitempty"`
}

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Create(notification *models.Notification) error
	List(criteria ListCriteria) ([]models.Notification, int64, error)
	ListCompany(criteria CompanyListCriteria) ([]CompanyRow, int64, error)

	// MarkRead sets isRead on the user's notification. A false return means no
	// notification with that id belongs to the user. Already-read records
	// still match, so re-marking is a no-op success.
	MarkRead(id, userID string) (bool, error)

	// MarkAllRead bulk-sets isRead on the user's unread notifications and
	// returns the modified count.
	MarkAllRead(userID string) (int64, error)
}
