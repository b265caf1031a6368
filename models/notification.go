package models

import "time"

// Notification types.
const (
	NotificationBookingRequest        = "booking_request"
	NotificationBookingAccepted       = "booking_accepted"
	NotificationBookingRejected       = "booking_rejected"
	NotificationBookingCompleted      = "booking_completed"
	NotificationCompanyResponseNeeded = "company_response_needed"
	NotificationPaymentReceived       = "payment_received"
	NotificationFeedbackRequest       = "feedback_request"
)

// Notification is a per-user message about a booking-lifecycle event. The
// company/staff names are denormalized at write time so display survives later
// renames of the referenced entities.
type Notification struct {
	ID      string `bson:"id" json:"id"`
	UserID  string `bson:"userId" json:"userId"`
	Type    string `bson:"type" json:"type"`
	Title   string `bson:"title" json:"title"`
	Message string `bson:"message" json:"message"`

	BookingID   string `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	CompanyID   string `bson:"companyId,omitempty" json:"companyId,omitempty"`
	CompanyName string `bson:"companyName,omitempty" json:"companyName,omitempty"`
	StaffID     string `bson:"staffId,omitempty" json:"staffId,omitempty"`
	StaffName   string `bson:"staffName,omitempty" json:"staffName,omitempty"`

	ActionStatus    string `bson:"actionStatus,omitempty" json:"actionStatus,omitempty"`
	StatusMessage   string `bson:"statusMessage,omitempty" json:"statusMessage,omitempty"`
	RejectionReason string `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`

	IsRead    bool      `bson:"isRead" json:"isRead"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
