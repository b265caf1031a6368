package booking

import (
	"strings"
	"time"

	"quickhub/models"
	"quickhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manage actions.
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

// ManageBooking applies the accept/reject transition on a pending booking.
// The status guard is enforced by a conditional update in the repository, so
// two concurrent calls can never both succeed. Exactly one notification is
// created for the booking's customer on success.
func (s *DefaultBookingService) ManageBooking(bookingID, action, reason string) (*ManageResult, error) {
	if _, err := uuid.Parse(bookingID); err != nil {
		return nil, utils.NewInvalidInput("Invalid booking ID")
	}
	if action != ActionAccept && action != ActionReject {
		return nil, utils.NewInvalidInput(`Action must be either "accept" or "reject"`)
	}
	reason = strings.TrimSpace(reason)
	if action == ActionReject && reason == "" {
		return nil, utils.NewInvalidInput("Rejection reason is required")
	}

	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, utils.NewInternal("Failed to manage booking", err)
	}
	if booking == nil {
		return nil, utils.NewNotFound("Booking not found")
	}
	if booking.Status != models.BookingPending {
		return nil, utils.NewInvalidState("Only pending bookings can be managed")
	}

	now := time.Now()
	var matched bool
	if action == ActionAccept {
		matched, err = s.Repo.ConfirmPending(bookingID, now)
	} else {
		matched, err = s.Repo.RejectPending(bookingID, reason, now)
	}
	if err != nil {
		return nil, utils.NewInternal("Failed to manage booking", err)
	}
	if !matched {
		// Lost the race: someone else transitioned it between the read and
		// the conditional update.
		current, err := s.Repo.GetByID(bookingID)
		if err != nil {
			return nil, utils.NewInternal("Failed to manage booking", err)
		}
		if current == nil {
			return nil, utils.NewNotFound("Booking not found")
		}
		return nil, utils.NewInvalidState("Only pending bookings can be managed")
	}

	s.notifyCustomerOfDecision(booking, action, reason, now)

	result := &ManageResult{
		ID:          booking.ID,
		ReferenceNo: booking.ReferenceNo,
	}
	if action == ActionAccept {
		result.Status = models.BookingConfirmed
		result.AcceptedAt = &now
	} else {
		result.Status = models.BookingRejected
		result.RejectionReason = reason
		result.RejectedAt = &now
	}
	return result, nil
}

// notifyCustomerOfDecision records the accepted/rejected notification for the
// booking's customer. Best-effort: a failed write is logged, not compensated.
func (s *DefaultBookingService) notifyCustomerOfDecision(booking *models.Booking, action, reason string, now time.Time) {
	staffName := "Unknown Staff"
	companyName := "Unknown Company"
	companyID := ""
	staffID := booking.StaffID

	if staff, err := s.StaffRepo.GetByID(booking.StaffID); err == nil && staff != nil {
		if staff.Name != "" {
			staffName = staff.Name
		}
		companyID = staff.CompanyID
		if companyID != "" {
			if company, err := s.CompanyRepo.GetByID(companyID); err == nil && company != nil {
				companyName = company.Name
			}
		}
	}

	dateStr := now.Format("02/01/2006")
	timeStr := now.Format("3:04 pm")

	notification := &models.Notification{
		ID:          uuid.New().String(),
		UserID:      booking.UserID,
		BookingID:   booking.ID,
		CompanyID:   companyID,
		CompanyName: companyName,
		StaffID:     staffID,
		StaffName:   staffName,
		IsRead:      false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if action == ActionAccept {
		notification.Type = models.NotificationBookingAccepted
		notification.Title = "Request Accepted"
		notification.Message = companyName + " have accepted your request to hire " + staffName + "."
		notification.ActionStatus = "accepted"
		notification.StatusMessage = "Completed on " + dateStr + " " + timeStr
	} else {
		notification.Type = models.NotificationBookingRejected
		notification.Title = "Request Rejected"
		notification.Message = companyName + " have rejected your request to hire " + staffName + "."
		notification.ActionStatus = "rejected"
		notification.StatusMessage = "Rejected due to " + reason + " on " + dateStr + " " + timeStr
		notification.RejectionReason = reason
	}

	if err := s.NotificationRepo.Create(notification); err != nil {
		s.logger().Warn("Failed to create booking decision notification",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}
