package staff

import (
	"time"

	companyRepo "quickhub/database/repository/company"
	feedbackRepo "quickhub/database/repository/feedback"
	staffRepo "quickhub/database/repository/staff"
	"quickhub/models"
	"quickhub/utils"

	"go.uber.org/zap"
)

// ListQuery carries the staff listing filters shared by the company and
// customer views. Nil pointers mean "not filtered".
type ListQuery struct {
	Search         string
	Services       []string
	EmploymentType string
	MinExp         *float64
	MaxExp         *float64
	MinRating      *float64
	PriceMin       *float64
	PriceMax       *float64
	CompanyID      string
	Sort           string
	Pagination     utils.Pagination
}

// ListItem is the company staff listing row.
type ListItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Avatar          string   `json:"avatar,omitempty"`
	EmploymentType  string   `json:"employmentType"`
	HourlyRate      *float64 `json:"hourlyRate,omitempty"`
	Specializations []string `json:"specializations"`
	ExperienceYears float64  `json:"experienceYears"`
	Rating          float64  `json:"rating"`
	Phone           string   `json:"phone,omitempty"`
	IsActive        bool     `json:"isActive"`
}

// CustomerListItem is the customer-facing staff listing row.
type CustomerListItem struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Avatar          string           `json:"avatar,omitempty"`
	EmploymentType  string           `json:"employmentType"`
	FeeText         string           `json:"feeText"`
	HourlyRate      *float64         `json:"hourlyRate,omitempty"`
	DailyRate       *float64         `json:"dailyRate,omitempty"`
	Specializations []string         `json:"specializations"`
	ExperienceYears float64          `json:"experienceYears"`
	Rating          float64          `json:"rating"`
	CompanyID       string           `json:"companyId,omitempty"`
	Location        *models.Location `json:"location,omitempty"`
}

// CreateInput is the company-side staff creation payload. The profile is
// fully embedded on the staff document.
type CreateInput struct {
	Name            string               `json:"name"`
	Email           string               `json:"email"`
	Phone           string               `json:"phone"`
	ProfilePicture  string               `json:"profilePicture"`
	Gender          string               `json:"gender"`
	Bio             string               `json:"bio"`
	Description     string               `json:"description"`
	CompanyID       string               `json:"companyId"`
	HourlyRate      *float64             `json:"hourlyRate"`
	DailyRate       *float64             `json:"dailyRate"`
	EmploymentType  string               `json:"employmentType"`
	Specializations []string             `json:"specializations"`
	ExperienceYears float64              `json:"experienceYears"`
	Availability    *models.Availability `json:"availability"`
	IsActive        *bool                `json:"isActive"`
	Location        *models.Location     `json:"location"`
}

// UpdateInput is the partial-update payload. Nil fields are left unchanged.
type UpdateInput struct {
	Name            *string                    `json:"name"`
	Email           *string                    `json:"email"`
	Phone           *string                    `json:"phone"`
	ProfilePicture  *string                    `json:"profilePicture"`
	Gender          *string                    `json:"gender"`
	Bio             *string                    `json:"bio"`
	Description     *string                    `json:"description"`
	CompanyID       *string                    `json:"companyId"`
	HourlyRate      *float64                   `json:"hourlyRate"`
	DailyRate       *float64                   `json:"dailyRate"`
	EmploymentType  *string                    `json:"employmentType"`
	Specializations []string                   `json:"specializations"`
	ExperienceYears *float64                   `json:"experienceYears"`
	IsActive        *bool                      `json:"isActive"`
	Location        *models.Location           `json:"location"`
	Availability    *models.Availability       `json:"availability"`
	AvailableHours  *models.AvailableHours     `json:"availableHours"`
	AvailableDays   *models.AvailableDays      `json:"availableDays"`
	SlotsToAdd      []models.AvailabilitySlot  `json:"slotsToAdd"`
	SlotsToRemove   []string                   `json:"slotsToRemove"`
}

// FeedbackItem is a recent review shown on the staff detail page.
type FeedbackItem struct {
	ID         string    `json:"id"`
	Rating     float64   `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	AuthorName string    `json:"authorName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CustomerDetail is the customer-facing staff detail shape.
type CustomerDetail struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Avatar          string               `json:"avatar,omitempty"`
	EmploymentType  string               `json:"employmentType"`
	ShiftInfo       float64              `json:"shiftInfo,omitempty"`
	HourlyRate      *float64             `json:"hourlyRate,omitempty"`
	ExperienceYears float64              `json:"experienceYears"`
	Location        *models.Location     `json:"location,omitempty"`
	Phone           string               `json:"phone,omitempty"`
	Specializations []string             `json:"specializations"`
	Bio             string               `json:"bio"`
	Availability    models.Availability  `json:"availability"`
	Company         *models.Company      `json:"company,omitempty"`
	Feedbacks       []FeedbackItem       `json:"feedbacks"`
}

// StaffService is the staff directory surface consumed by handlers.
type StaffService interface {
	List(query ListQuery) ([]ListItem, int64, error)
	ListCustomer(query ListQuery) ([]CustomerListItem, int64, error)
	Create(input CreateInput) (string, error)
	Update(id string, input UpdateInput) (*models.Staff, error)
	CustomerDetails(id string) (*CustomerDetail, error)
	CompanyDetails(id string) (*models.Company, error)
}

// DefaultStaffService is the production implementation.
type DefaultStaffService struct {
	Repo         staffRepo.StaffRepository
	CompanyRepo  companyRepo.CompanyRepository
	FeedbackRepo feedbackRepo.FeedbackRepository
	Logger       *zap.Logger
}
