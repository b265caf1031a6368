package handlers

import (
	"net/http"

	bookingSvc "quickhub/services/booking"
	"quickhub/utils"

	"github.com/gin-gonic/gin"
)

// CompanyHandler serves the company dashboard booking endpoints.
type CompanyHandler struct {
	Bookings bookingSvc.BookingService
}

func NewCompanyHandler(svc bookingSvc.BookingService) *CompanyHandler {
	return &CompanyHandler{Bookings: svc}
}

// DashboardBookings handles GET /company/dashboard/bookings.
func (h *CompanyHandler) DashboardBookings(c *gin.Context) {
	query := bookingSvc.DashboardQuery{
		Search:     c.Query("search"),
		Statuses:   splitCSV(c.Query("status")),
		Location:   c.Query("location"),
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
		Sort:       c.Query("sort"),
		Pagination: utils.ParsePagination(c),
	}

	items, total, err := h.Bookings.DashboardBookings(query)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	meta := utils.Meta{Page: query.Pagination.Page, Limit: query.Pagination.Limit, Total: total}
	utils.JSONSuccessList(c, meta, items)
}

// BookingDetails handles GET /company/bookings/:bookingId.
func (h *CompanyHandler) BookingDetails(c *gin.Context) {
	detail, err := h.Bookings.GetBookingDetails(c.Param("bookingId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, detail)
}

// ManageBooking handles POST /company/bookings/:bookingId/manage.
func (h *CompanyHandler) ManageBooking(c *gin.Context) {
	var input struct {
		Action string `json:"action"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.NewInvalidInput("Invalid request: "+err.Error()))
		return
	}

	result, err := h.Bookings.ManageBooking(c.Param("bookingId"), input.Action, input.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.JSONSuccessMessage(c, "Booking "+input.Action+"ed successfully", result)
}
