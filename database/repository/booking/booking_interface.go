package bookingRepo

import (
	"time"

	"quickhub/models"
)

// CustomerListCriteria filters a customer's own bookings.
type CustomerListCriteria struct {
	UserID   string
	Services []string
	Statuses []string
	Sort     string
	Skip     int64
	Limit    int64
}

// DashboardCriteria filters the company dashboard booking listing.
type DashboardCriteria struct {
	Search    string
	Statuses  []string
	Location  string
	StartDate *time.Time
	EndDate   *time.Time
	Sort      string
	Skip      int64
	Limit     int64
}

// CustomerBookingRow is a booking joined with its staff profile.
type CustomerBookingRow struct {
	models.Booking `bson:",inline"`
	Staff          *models.Staff `bson:"staff,omitempty"`
}

// DashboardRow is a booking joined with its staff profile and customer account.
type DashboardRow struct {
	models.Booking `bson:",inline"`
	Staff          *models.Staff `bson:"staff,omitempty"`
	Customer       *models.User  `bson:"customer,omitempty"`
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	ListByCustomer(criteria CustomerListCriteria) ([]CustomerBookingRow, int64, error)
	ListDashboard(criteria DashboardCriteria) ([]DashboardRow, int64, error)

	// ConfirmPending and RejectPending apply the status transition as a single
	// conditional update keyed on status=Pending. A false return means no
	// pending booking matched the id.
	ConfirmPending(id string, now time.Time) (bool, error)
	RejectPending(id, reason string, now time.Time) (bool, error)
}
