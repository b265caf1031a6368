package booking

import (
	"time"

	bookingRepo "quickhub/database/repository/booking"
	companyRepo "quickhub/database/repository/company"
	notificationRepo "quickhub/database/repository/notification"
	staffRepo "quickhub/database/repository/staff"
	userRepo "quickhub/database/repository/user"
	"quickhub/models"
	"quickhub/utils"

	"go.uber.org/zap"
)

// CreateBookingInput is the customer-facing booking request payload.
type CreateBookingInput struct {
	StaffID   string           `json:"staffId"`
	Service   string           `json:"service"`
	StartDate string           `json:"startDate"`
	EndDate   string           `json:"endDate"`
	Notes     string           `json:"notes"`
	Location  *models.Location `json:"location"`
}

// ListQuery carries the customer booking listing filters.
type ListQuery struct {
	Services   []string
	Statuses   []string
	Sort       string
	Pagination utils.Pagination
}

// DashboardQuery carries the company dashboard listing filters.
type DashboardQuery struct {
	Search     string
	Statuses   []string
	Location   string
	StartDate  string
	EndDate    string
	Sort       string
	Pagination utils.Pagination
}

// PartyRef is a display-ready reference to a staff member or customer.
type PartyRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// DateRange is a start/end pair for display.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CustomerBookingItem is the customer listing row shape.
type CustomerBookingItem struct {
	ID          string    `json:"id"`
	ReferenceNo string    `json:"referenceNo"`
	Staff       PartyRef  `json:"staff"`
	Date        DateRange `json:"date"`
	Time        string    `json:"time,omitempty"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	FeeText     string    `json:"feeText,omitempty"`
	CanPay      bool      `json:"canPay"`
	CanReview   bool      `json:"canReview"`
	Rating      float64   `json:"rating,omitempty"`
}

// DashboardBookingItem is the company dashboard row shape.
type DashboardBookingItem struct {
	ID          string    `json:"id"`
	ReferenceNo string    `json:"referenceNo"`
	Customer    PartyRef  `json:"customer"`
	Staff       PartyRef  `json:"staff"`
	Service     string    `json:"service"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	DateRange   DateRange `json:"dateRange"`
	FeeText     string    `json:"feeText"`
}

// BookingDetail is the company-side booking detail shape.
type BookingDetail struct {
	ID              string             `json:"id"`
	ReferenceNo     string             `json:"referenceNo"`
	Service         string             `json:"service"`
	Status          string             `json:"status"`
	StartDate       time.Time          `json:"startDate"`
	EndDate         time.Time          `json:"endDate"`
	Location        *models.Location   `json:"location,omitempty"`
	FeeSnapshot     models.FeeSnapshot `json:"feeSnapshot"`
	RejectionReason string             `json:"rejectionReason,omitempty"`
	RejectedAt      *time.Time         `json:"rejectedAt,omitempty"`
	AcceptedAt      *time.Time         `json:"acceptedAt,omitempty"`
	Customer        DetailCustomer     `json:"customer"`
	Staff           DetailStaff        `json:"staff"`
}

// DetailCustomer is the customer block inside a booking detail.
type DetailCustomer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address"`
}

// DetailStaff is the staff block inside a booking detail.
type DetailStaff struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Avatar          string   `json:"avatar,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Gender          string   `json:"gender"`
	Specializations []string `json:"specializations"`
	EmploymentType  string   `json:"employmentType"`
	HourlyRate      *float64 `json:"hourlyRate,omitempty"`
	DailyRate       *float64 `json:"dailyRate,omitempty"`
	TimeWindow      string   `json:"timeWindow,omitempty"`
}

// ManageResult summarizes a booking after an accept/reject transition.
type ManageResult struct {
	ID              string     `json:"id"`
	ReferenceNo     string     `json:"referenceNo"`
	Status          string     `json:"status"`
	AcceptedAt      *time.Time `json:"acceptedAt,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	RejectedAt      *time.Time `json:"rejectedAt,omitempty"`
}

// BookingService is the booking lifecycle surface consumed by handlers.
type BookingService interface {
	CreateBooking(userID string, input CreateBookingInput) (*models.Booking, error)
	ListCustomerBookings(userID string, query ListQuery) ([]CustomerBookingItem, int64, error)
	DashboardBookings(query DashboardQuery) ([]DashboardBookingItem, int64, error)
	GetBookingDetails(bookingID string) (*BookingDetail, error)
	ManageBooking(bookingID, action, reason string) (*ManageResult, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo             bookingRepo.BookingRepository
	StaffRepo        staffRepo.StaffRepository
	UserRepo         userRepo.UserRepository
	CompanyRepo      companyRepo.CompanyRepository
	NotificationRepo notificationRepo.NotificationRepository
	Logger           *zap.Logger
}
