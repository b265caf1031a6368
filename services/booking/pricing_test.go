package booking

import (
	"regexp"
	"testing"
	"time"

	"quickhub/models"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestDeriveShift(t *testing.T) {
	tests := []struct {
		name           string
		staff          *models.Staff
		employmentType string
		wantHours      float64
		wantWindow     string
	}{
		{
			name:           "part time defaults",
			staff:          &models.Staff{},
			employmentType: models.EmploymentPartTime,
			wantHours:      4,
			wantWindow:     "10:00-14:00",
		},
		{
			name:           "full time defaults",
			staff:          &models.Staff{},
			employmentType: models.EmploymentFullTime,
			wantHours:      8,
			wantWindow:     "10:00-18:00",
		},
		{
			name:           "freelance falls back to full time defaults",
			staff:          &models.Staff{},
			employmentType: models.EmploymentFreelance,
			wantHours:      8,
			wantWindow:     "10:00-18:00",
		},
		{
			name: "weekly availability overrides defaults",
			staff: &models.Staff{
				Availability: models.Availability{
					Weekly: &models.WeeklyAvailability{ShiftHoursPerDay: 6, TimeWindowPerDay: "09:00-15:00"},
				},
			},
			employmentType: models.EmploymentPartTime,
			wantHours:      6,
			wantWindow:     "09:00-15:00",
		},
		{
			name: "partial weekly keeps default window",
			staff: &models.Staff{
				Availability: models.Availability{
					Weekly: &models.WeeklyAvailability{ShiftHoursPerDay: 5},
				},
			},
			employmentType: models.EmploymentFullTime,
			wantHours:      5,
			wantWindow:     "10:00-18:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, window := DeriveShift(tt.staff, tt.employmentType)
			assert.Equal(t, tt.wantHours, hours)
			assert.Equal(t, tt.wantWindow, window)
		})
	}
}

func TestNumDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 1, NumDays(day(10), day(10)))
	assert.Equal(t, 3, NumDays(day(10), day(12)))
	assert.Equal(t, 31, NumDays(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)))
}

func TestComputeFeeSnapshot(t *testing.T) {
	tests := []struct {
		name           string
		staff          *models.Staff
		employmentType string
		shiftHours     float64
		numDays        int
		wantAmount     float64
	}{
		{
			name:           "part time bills hourly per shift",
			staff:          &models.Staff{HourlyRate: floatPtr(200)},
			employmentType: models.EmploymentPartTime,
			shiftHours:     4,
			numDays:        3,
			wantAmount:     2400,
		},
		{
			name:           "full time bills daily",
			staff:          &models.Staff{DailyRate: floatPtr(1000)},
			employmentType: models.EmploymentFullTime,
			shiftHours:     8,
			numDays:        2,
			wantAmount:     2000,
		},
		{
			name:           "full time without daily rate falls back to hourly",
			staff:          &models.Staff{HourlyRate: floatPtr(150)},
			employmentType: models.EmploymentFullTime,
			shiftHours:     8,
			numDays:        2,
			wantAmount:     2400,
		},
		{
			name:           "freelance uses hourly over shift",
			staff:          &models.Staff{HourlyRate: floatPtr(100)},
			employmentType: models.EmploymentFreelance,
			shiftHours:     6,
			numDays:        1,
			wantAmount:     600,
		},
		{
			name:           "no rates yields zero",
			staff:          &models.Staff{},
			employmentType: models.EmploymentFullTime,
			shiftHours:     8,
			numDays:        5,
			wantAmount:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := ComputeFeeSnapshot(tt.staff, tt.employmentType, tt.shiftHours, tt.numDays)
			assert.Equal(t, tt.wantAmount, snap.Amount)
			assert.Equal(t, float64(0), snap.CGST)
			assert.Equal(t, float64(0), snap.SGST)
			assert.Equal(t, tt.wantAmount, snap.Total)
			assert.Equal(t, tt.staff.HourlyRate, snap.HourlyRate)
			assert.Equal(t, tt.staff.DailyRate, snap.DailyRate)
		})
	}
}

func TestGenerateReferenceNo(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	ref := GenerateReferenceNo(now)

	assert.Regexp(t, regexp.MustCompile(`^BK-20260831-\d{4}$`), ref)
}

func TestFeeText(t *testing.T) {
	assert.Equal(t, "₹ 250/hr", FeeText(models.FeeSnapshot{HourlyRate: floatPtr(250)}))
	assert.Equal(t, "₹ 1500/day", FeeText(models.FeeSnapshot{DailyRate: floatPtr(1500)}))
	assert.Equal(t, "₹ 99.5/hr", FeeText(models.FeeSnapshot{HourlyRate: floatPtr(99.5)}))
	assert.Equal(t, "", FeeText(models.FeeSnapshot{}))
}
