package booking

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"quickhub/models"
)

// Default shift windows applied when the staff profile carries no weekly
// availability override.
const (
	defaultPartTimeHours  = 4
	defaultPartTimeWindow = "10:00-14:00"
	defaultFullTimeHours  = 8
	defaultFullTimeWindow = "10:00-18:00"
)

// DeriveShift resolves the shift hours and time window for a booking, taking
// the staff's weekly availability when set and falling back to the
// employment-type defaults.
func DeriveShift(staff *models.Staff, employmentType string) (hours float64, window string) {
	weekly := staff.Availability.Weekly
	if weekly != nil && weekly.ShiftHoursPerDay > 0 {
		hours = weekly.ShiftHoursPerDay
	} else if employmentType == models.EmploymentPartTime {
		hours = defaultPartTimeHours
	} else {
		hours = defaultFullTimeHours
	}
	if weekly != nil && weekly.TimeWindowPerDay != "" {
		window = weekly.TimeWindowPerDay
	} else if employmentType == models.EmploymentPartTime {
		window = defaultPartTimeWindow
	} else {
		window = defaultFullTimeWindow
	}
	return hours, window
}

// NumDays counts the inclusive day span of a booking.
func NumDays(start, end time.Time) int {
	return int(math.Floor(end.Sub(start).Hours()/24)) + 1
}

// ComputeFeeSnapshot freezes the price breakdown at booking time. Part-time
// staff bill hourly per shift, full-time staff bill a daily rate, and anything
// else (freelance, or a full-timer without a daily rate) falls back to the
// hourly rate over the shift. Tax fields stay zero; total equals amount.
func ComputeFeeSnapshot(staff *models.Staff, employmentType string, shiftHours float64, numDays int) models.FeeSnapshot {
	days := float64(numDays)
	var amount float64
	switch {
	case employmentType == models.EmploymentPartTime && staff.HourlyRate != nil:
		hours := shiftHours
		if hours == 0 {
			hours = defaultPartTimeHours
		}
		amount = *staff.HourlyRate * hours * days
	case employmentType == models.EmploymentFullTime && staff.DailyRate != nil:
		amount = *staff.DailyRate * days
	case staff.HourlyRate != nil:
		hours := shiftHours
		if hours == 0 {
			hours = defaultFullTimeHours
		}
		amount = *staff.HourlyRate * hours * days
	}

	return models.FeeSnapshot{
		HourlyRate: staff.HourlyRate,
		DailyRate:  staff.DailyRate,
		Amount:     amount,
		CGST:       0,
		SGST:       0,
		Total:      amount,
	}
}

// GenerateReferenceNo builds a human-readable booking reference of the form
// BK-YYYYMMDD-NNNN. Uniqueness is enforced by the referenceNo index; callers
// retry on collision.
func GenerateReferenceNo(now time.Time) string {
	suffix := rand.Intn(9000) + 1000
	return fmt.Sprintf("BK-%s-%d", now.Format("20060102"), suffix)
}

// FeeText renders the listing fee label from a snapshot.
func FeeText(snapshot models.FeeSnapshot) string {
	if snapshot.HourlyRate != nil {
		return "₹ " + strconv.FormatFloat(*snapshot.HourlyRate, 'f', -1, 64) + "/hr"
	}
	if snapshot.DailyRate != nil {
		return "₹ " + strconv.FormatFloat(*snapshot.DailyRate, 'f', -1, 64) + "/day"
	}
	return ""
}
