package models

import "time"

// Employment types drive default shift hours and rate selection.
const (
	EmploymentFullTime  = "full_time"
	EmploymentPartTime  = "part_time"
	EmploymentFreelance = "freelance"
)

// WeeklyAvailability is the recurring weekly pattern a staff member works.
type WeeklyAvailability struct {
	ShiftHoursPerDay float64 `bson:"shiftHoursPerDay,omitempty" json:"shiftHoursPerDay,omitempty"`
	TimeWindowPerDay string  `bson:"timeWindowPerDay,omitempty" json:"timeWindowPerDay,omitempty"`
}

// AvailabilitySlot is an explicit bookable slot on a given day.
type AvailabilitySlot struct {
	ID        string `bson:"id" json:"id"`
	Day       string `bson:"day" json:"day"`
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// Availability combines the weekly pattern with explicit slots.
type Availability struct {
	Weekly *WeeklyAvailability `bson:"weekly,omitempty" json:"weekly,omitempty"`
	Slots  []AvailabilitySlot  `bson:"slots,omitempty" json:"slots,omitempty"`
}

// AvailableHours applies to part-time staff only.
type AvailableHours struct {
	StartTime   string `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime     string `bson:"endTime,omitempty" json:"endTime,omitempty"`
	DaysPerWeek int    `bson:"daysPerWeek,omitempty" json:"daysPerWeek,omitempty"`
}

// AvailableDays applies to full-time staff only.
type AvailableDays struct {
	WorkingDays []string `bson:"workingDays,omitempty" json:"workingDays,omitempty"`
	StartTime   string   `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime     string   `bson:"endTime,omitempty" json:"endTime,omitempty"`
}

// Staff is a company-registered bookable profile. Contact fields are embedded
// on the staff document itself; there is no linked user account.
type Staff struct {
	ID             string `bson:"id" json:"id"`
	Name           string `bson:"name,omitempty" json:"name,omitempty"`
	Email          string `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfilePicture string `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	Gender         string `bson:"gender,omitempty" json:"gender,omitempty"`
	Bio            string `bson:"bio,omitempty" json:"bio,omitempty"`
	Description    string `bson:"description,omitempty" json:"description,omitempty"`

	CompanyID       string   `bson:"companyId,omitempty" json:"companyId,omitempty"`
	HourlyRate      *float64 `bson:"hourlyRate,omitempty" json:"hourlyRate,omitempty"`
	DailyRate       *float64 `bson:"dailyRate,omitempty" json:"dailyRate,omitempty"`
	EmploymentType  string   `bson:"employmentType,omitempty" json:"employmentType,omitempty"`
	Specializations []string `bson:"specializations,omitempty" json:"specializations,omitempty"`
	ExperienceYears float64  `bson:"experienceYears" json:"experienceYears"`

	Availability   Availability    `bson:"availability" json:"availability"`
	AvailableHours *AvailableHours `bson:"availableHours,omitempty" json:"availableHours,omitempty"`
	AvailableDays  *AvailableDays  `bson:"availableDays,omitempty" json:"availableDays,omitempty"`

	IsActive     bool      `bson:"isActive" json:"isActive"`
	Rating       float64   `bson:"rating" json:"rating"`
	TotalReviews int       `bson:"totalReviews" json:"totalReviews"`
	Location     *Location `bson:"location,omitempty" json:"location,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NormalizeAvailability enforces the employment-type exclusivity rule:
// full-time staff never carry availableHours, part-time staff never carry
// availableDays.
func (s *Staff) NormalizeAvailability() {
	switch s.EmploymentType {
	case EmploymentFullTime:
		s.AvailableHours = nil
	case EmploymentPartTime:
		s.AvailableDays = nil
	}
}
