package handlers

import (
	"net/http"

	bookingSvc "quickhub/services/booking"
	"quickhub/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the customer-facing booking endpoints.
type BookingHandler struct {
	Service bookingSvc.BookingService
}

func NewBookingHandler(svc bookingSvc.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking handles POST /booking/customer/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID := c.GetString("userID")

	var input bookingSvc.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.NewInvalidInput("Invalid request: "+err.Error()))
		return
	}

	booking, err := h.Service.CreateBooking(userID, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// ListCustomerBookings handles GET /booking/customer/bookings.
func (h *BookingHandler) ListCustomerBookings(c *gin.Context) {
	userID := c.GetString("userID")

	query := bookingSvc.ListQuery{
		Services:   splitCSV(c.Query("services")),
		Statuses:   splitCSV(c.Query("status")),
		Sort:       c.Query("sort"),
		Pagination: utils.ParsePagination(c),
	}

	items, total, err := h.Service.ListCustomerBookings(userID, query)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	meta := utils.Meta{Page: query.Pagination.Page, Limit: query.Pagination.Limit, Total: total}
	utils.JSONSuccessList(c, meta, items)
}
