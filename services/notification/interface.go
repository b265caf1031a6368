package notification

import (
	"time"

	companyRepo "quickhub/database/repository/company"
	notificationRepo "quickhub/database/repository/notification"
	userRepo "quickhub/database/repository/user"
	"quickhub/utils"

	"go.uber.org/zap"
)

// ListQuery carries the notification listing filters.
type ListQuery struct {
	Types      []string
	IsRead     *bool
	Sort       string
	Pagination utils.Pagination
}

// EntityRef is a weak reference to a company or staff member with its
// denormalized display name.
type EntityRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerRef includes the customer's contact email for the company inbox.
type CustomerRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// BookingRef is the booking summary joined into company notifications.
type BookingRef struct {
	ID          string    `json:"id"`
	ReferenceNo string    `json:"referenceNo"`
	Service     string    `json:"service"`
	Status      string    `json:"status"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

// Item is the notification listing row.
type Item struct {
	ID              string     `json:"id"`
	Type            string     `json:"type"`
	Title           string     `json:"title"`
	Message         string     `json:"message"`
	Company         *EntityRef `json:"company"`
	Staff           *EntityRef `json:"staff"`
	ActionStatus    string     `json:"actionStatus,omitempty"`
	StatusMessage   string     `json:"statusMessage,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	BookingID       string     `json:"bookingId,omitempty"`
	IsRead          bool       `json:"isRead"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// CompanyItem is the company inbox row, enriched with the booking and its
// customer.
type CompanyItem struct {
	Item
	Customer *CustomerRef `json:"customer"`
	Booking  *BookingRef  `json:"booking"`
}

// ReadResult reports a single mark-as-read outcome.
type ReadResult struct {
	ID     string `json:"id"`
	IsRead bool   `json:"isRead"`
}

// NotificationService is the notification store surface consumed by handlers.
type NotificationService interface {
	List(userID string, query ListQuery) ([]Item, int64, error)
	MarkAsRead(notificationID, userID string) (*ReadResult, error)
	MarkAllAsRead(userID string) (int64, error)
	ListCompany(userID string, query ListQuery) ([]CompanyItem, int64, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo        notificationRepo.NotificationRepository
	UserRepo    userRepo.UserRepository
	CompanyRepo companyRepo.CompanyRepository
	Logger      *zap.Logger
}
