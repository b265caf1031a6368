package booking

import (
	"testing"
	"time"

	"quickhub/models"
	"quickhub/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingBooking(id string) *models.Booking {
	return &models.Booking{
		ID:          id,
		ReferenceNo: "BK-20260310-1234",
		UserID:      uuid.New().String(),
		StaffID:     uuid.New().String(),
		Service:     "Cook",
		Status:      models.BookingPending,
	}
}

func TestManageBookingValidation(t *testing.T) {
	bookingID := uuid.New().String()

	tests := []struct {
		name   string
		id     string
		action string
		reason string
	}{
		{name: "invalid booking id", id: "nope", action: ActionAccept},
		{name: "unknown action", id: bookingID, action: "approve"},
		{name: "reject without reason", id: bookingID, action: ActionReject, reason: ""},
		{name: "reject with whitespace reason", id: bookingID, action: ActionReject, reason: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, notifMock := newTestService()
			repo.GetByIDFn = func(id string) (*models.Booking, error) {
				return pendingBooking(id), nil
			}

			result, err := svc.ManageBooking(tt.id, tt.action, tt.reason)
			assert.Nil(t, result)
			assertErrorCode(t, err, utils.CodeInvalidInput)
			assert.Empty(t, notifMock.created, "failed validation must not emit notifications")
		})
	}
}

func TestManageBookingAccept(t *testing.T) {
	svc, repo, staffMock, notifMock := newTestService()
	bookingID := uuid.New().String()
	booking := pendingBooking(bookingID)

	repo.GetByIDFn = func(string) (*models.Booking, error) { return booking, nil }
	repo.ConfirmPendingFn = func(id string, now time.Time) (bool, error) {
		assert.Equal(t, bookingID, id)
		return true, nil
	}
	staffMock.GetByIDFn = func(string) (*models.Staff, error) {
		return &models.Staff{ID: booking.StaffID, Name: "Asha Verma", CompanyID: uuid.New().String()}, nil
	}
	svc.CompanyRepo = &mockCompanyRepo{GetByIDFn: func(string) (*models.Company, error) {
		return &models.Company{Name: "HomeCare Services"}, nil
	}}

	result, err := svc.ManageBooking(bookingID, ActionAccept, "")
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, result.Status)
	require.NotNil(t, result.AcceptedAt)
	assert.Nil(t, result.RejectedAt)

	require.Len(t, notifMock.created, 1)
	n := notifMock.created[0]
	assert.Equal(t, models.NotificationBookingAccepted, n.Type)
	assert.Equal(t, booking.UserID, n.UserID)
	assert.Equal(t, "Request Accepted", n.Title)
	assert.Equal(t, "HomeCare Services have accepted your request to hire Asha Verma.", n.Message)
	assert.Equal(t, "accepted", n.ActionStatus)
	assert.Contains(t, n.StatusMessage, "Completed on ")
}

func TestManageBookingReject(t *testing.T) {
	svc, repo, staffMock, notifMock := newTestService()
	bookingID := uuid.New().String()
	booking := pendingBooking(bookingID)

	repo.GetByIDFn = func(string) (*models.Booking, error) { return booking, nil }
	repo.RejectPendingFn = func(id, reason string, now time.Time) (bool, error) {
		assert.Equal(t, "staff unavailable", reason)
		return true, nil
	}
	staffMock.GetByIDFn = func(string) (*models.Staff, error) {
		return &models.Staff{ID: booking.StaffID, Name: "Asha Verma", CompanyID: uuid.New().String()}, nil
	}
	svc.CompanyRepo = &mockCompanyRepo{GetByIDFn: func(string) (*models.Company, error) {
		return &models.Company{Name: "HomeCare Services"}, nil
	}}

	result, err := svc.ManageBooking(bookingID, ActionReject, "staff unavailable")
	require.NoError(t, err)
	assert.Equal(t, models.BookingRejected, result.Status)
	assert.Equal(t, "staff unavailable", result.RejectionReason)
	require.NotNil(t, result.RejectedAt)

	require.Len(t, notifMock.created, 1)
	n := notifMock.created[0]
	assert.Equal(t, models.NotificationBookingRejected, n.Type)
	assert.Equal(t, "Request Rejected", n.Title)
	assert.Equal(t, "HomeCare Services have rejected your request to hire Asha Verma.", n.Message)
	assert.Equal(t, "staff unavailable", n.RejectionReason)
	assert.Contains(t, n.StatusMessage, "Rejected due to staff unavailable on ")
}

func TestManageBookingStateGuards(t *testing.T) {
	t.Run("booking not found", func(t *testing.T) {
		svc, repo, _, _ := newTestService()
		repo.GetByIDFn = func(string) (*models.Booking, error) { return nil, nil }

		_, err := svc.ManageBooking(uuid.New().String(), ActionAccept, "")
		assertErrorCode(t, err, utils.CodeNotFound)
	})

	t.Run("already confirmed", func(t *testing.T) {
		svc, repo, _, notifMock := newTestService()
		repo.GetByIDFn = func(id string) (*models.Booking, error) {
			b := pendingBooking(id)
			b.Status = models.BookingConfirmed
			return b, nil
		}

		_, err := svc.ManageBooking(uuid.New().String(), ActionAccept, "")
		assertErrorCode(t, err, utils.CodeInvalidState)
		assert.Empty(t, notifMock.created)
	})

	t.Run("lost the race to a concurrent transition", func(t *testing.T) {
		svc, repo, _, notifMock := newTestService()
		calls := 0
		repo.GetByIDFn = func(id string) (*models.Booking, error) {
			calls++
			b := pendingBooking(id)
			if calls > 1 {
				// The re-probe after the conditional update sees the other
				// caller's transition.
				b.Status = models.BookingRejected
			}
			return b, nil
		}
		repo.ConfirmPendingFn = func(string, time.Time) (bool, error) { return false, nil }

		_, err := svc.ManageBooking(uuid.New().String(), ActionAccept, "")
		assertErrorCode(t, err, utils.CodeInvalidState)
		assert.Empty(t, notifMock.created, "losing the race must not emit a notification")
	})

	t.Run("deleted between read and update", func(t *testing.T) {
		svc, repo, _, _ := newTestService()
		calls := 0
		repo.GetByIDFn = func(id string) (*models.Booking, error) {
			calls++
			if calls > 1 {
				return nil, nil
			}
			return pendingBooking(id), nil
		}
		repo.ConfirmPendingFn = func(string, time.Time) (bool, error) { return false, nil }

		_, err := svc.ManageBooking(uuid.New().String(), ActionAccept, "")
		assertErrorCode(t, err, utils.CodeNotFound)
	})
}
