package handlers

import (
	"net/http"

	staffSvc "quickhub/services/staff"
	"quickhub/utils"

	"github.com/gin-gonic/gin"
)

// StaffHandler serves the staff directory endpoints.
type StaffHandler struct {
	Service staffSvc.StaffService
}

func NewStaffHandler(svc staffSvc.StaffService) *StaffHandler {
	return &StaffHandler{Service: svc}
}

func staffListQuery(c *gin.Context) staffSvc.ListQuery {
	return staffSvc.ListQuery{
		Search:         c.Query("search"),
		Services:       splitCSV(c.Query("services")),
		EmploymentType: c.Query("type"),
		MinExp:         floatQuery(c, "minExp"),
		MaxExp:         floatQuery(c, "maxExp"),
		MinRating:      floatQuery(c, "rating"),
		PriceMin:       floatQuery(c, "priceMin"),
		PriceMax:       floatQuery(c, "priceMax"),
		CompanyID:      c.Query("company"),
		Sort:           c.Query("sort"),
		Pagination:     utils.ParsePagination(c),
	}
}

// ListStaff handles GET /staff/list-staff (company view, inactive included).
func (h *StaffHandler) ListStaff(c *gin.Context) {
	query := staffListQuery(c)
	items, total, err := h.Service.List(query)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	meta := utils.Meta{Page: query.Pagination.Page, Limit: query.Pagination.Limit, Total: total}
	utils.JSONSuccessList(c, meta, items)
}

// ListStaffCustomer handles GET /staff/customer/list-staff.
func (h *StaffHandler) ListStaffCustomer(c *gin.Context) {
	query := staffListQuery(c)
	items, total, err := h.Service.ListCustomer(query)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	meta := utils.Meta{Page: query.Pagination.Page, Limit: query.Pagination.Limit, Total: total}
	utils.JSONSuccessList(c, meta, items)
}

// CreateStaff handles POST /staff/create-staff.
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var input staffSvc.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.NewInvalidInput("Invalid request: "+err.Error()))
		return
	}

	id, err := h.Service.Create(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"id": id})
}

// UpdateStaff handles POST /staff/update-staff/:id.
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	var input staffSvc.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.NewInvalidInput("Invalid request: "+err.Error()))
		return
	}

	updated, err := h.Service.Update(c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.JSONSuccessMessage(c, "Staff updated", updated)
}

// StaffDetailsCustomer handles GET /staff/customer/staff-details/:id.
func (h *StaffHandler) StaffDetailsCustomer(c *gin.Context) {
	detail, err := h.Service.CustomerDetails(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, detail)
}

// CompanyDetailCustomer handles GET /staff/customer/company-detail/:id.
func (h *StaffHandler) CompanyDetailCustomer(c *gin.Context) {
	company, err := h.Service.CompanyDetails(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, company)
}
