package models

import "time"

// Booking statuses. ManageBooking only ever moves Pending to Confirmed or
// Rejected; Completed/Cancelled are set by later flows.
const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingRejected  = "Rejected"
	BookingCompleted = "Completed"
	BookingCancelled = "Cancelled"
)

// Payment statuses.
const (
	PaymentUnpaid = "Unpaid"
	PaymentPaid   = "Paid"
)

// FeeSnapshot is the price breakdown frozen at booking-creation time. Later
// rate changes on the staff record never alter it.
type FeeSnapshot struct {
	HourlyRate *float64 `bson:"hourlyRate,omitempty" json:"hourlyRate,omitempty"`
	DailyRate  *float64 `bson:"dailyRate,omitempty" json:"dailyRate,omitempty"`
	Amount     float64  `bson:"amount" json:"amount"`
	CGST       float64  `bson:"cgst" json:"cgst"`
	SGST       float64  `bson:"sgst" json:"sgst"`
	Total      float64  `bson:"total" json:"total"`
}

// Booking reserves one staff member for a service over a date range.
type Booking struct {
	ID          string `bson:"id" json:"id"`
	ReferenceNo string `bson:"referenceNo" json:"referenceNo"`
	UserID      string `bson:"userId" json:"userId"`
	StaffID     string `bson:"staffId" json:"staffId"`
	Service     string `bson:"service" json:"service"`

	EmploymentType   string  `bson:"employmentType" json:"employmentType"`
	ShiftHoursPerDay float64 `bson:"shiftHoursPerDay,omitempty" json:"shiftHoursPerDay,omitempty"`
	TimeWindowPerDay string  `bson:"timeWindowPerDay,omitempty" json:"timeWindowPerDay,omitempty"`

	StartDate   time.Time   `bson:"startDate" json:"startDate"`
	EndDate     time.Time   `bson:"endDate" json:"endDate"`
	FeeSnapshot FeeSnapshot `bson:"feeSnapshot" json:"feeSnapshot"`

	Status        string `bson:"status" json:"status"`
	PaymentStatus string `bson:"paymentStatus" json:"paymentStatus"`

	Rating   float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	Review   string    `bson:"review,omitempty" json:"review,omitempty"`
	Notes    string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Location *Location `bson:"location,omitempty" json:"location,omitempty"`

	RejectionReason string     `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	RejectedAt      *time.Time `bson:"rejectedAt,omitempty" json:"rejectedAt,omitempty"`
	AcceptedAt      *time.Time `bson:"acceptedAt,omitempty" json:"acceptedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
