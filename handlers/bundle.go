package handlers

import (
	"net/http"

	bookingSvc "quickhub/services/booking"
	notificationSvc "quickhub/services/notification"
	staffSvc "quickhub/services/staff"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so routes can be
// registered from a single place.
type HandlerBundle struct {
	Booking      *BookingHandler
	Company      *CompanyHandler
	Staff        *StaffHandler
	Notification *NotificationHandler
}

// NewHandlerBundle wires the handlers against their services.
func NewHandlerBundle(
	bookings bookingSvc.BookingService,
	staff staffSvc.StaffService,
	notifications notificationSvc.NotificationService,
) *HandlerBundle {
	return &HandlerBundle{
		Booking:      NewBookingHandler(bookings),
		Company:      NewCompanyHandler(bookings),
		Staff:        NewStaffHandler(staff),
		Notification: NewNotificationHandler(notifications),
	}
}

// Health handles GET /health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
