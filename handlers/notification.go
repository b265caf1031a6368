package handlers

import (
	notificationSvc "quickhub/services/notification"
	"quickhub/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the notification inbox endpoints.
type NotificationHandler struct {
	Service notificationSvc.NotificationService
}

func NewNotificationHandler(svc notificationSvc.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

func notificationListQuery(c *gin.Context) notificationSvc.ListQuery {
	return notificationSvc.ListQuery{
		Types:      splitCSV(c.Query("type")),
		IsRead:     boolQuery(c, "isRead"),
		Sort:       c.Query("sort"),
		Pagination: utils.ParsePagination(c),
	}
}

// List handles GET /notifications/list.
func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.GetString("userID")
	query := notificationListQuery(c)

	items, total, err := h.Service.List(userID, query)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	meta := utils.Meta{Page: query.Pagination.Page, Limit: query.Pagination.Limit, Total: total}
	utils.JSONSuccessList(c, meta, items)
}

// MarkRead handles PATCH /notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.GetString("userID")

	result, err := h.Service.MarkAsRead(c.Param("id"), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.JSONSuccessMessage(c, "Notification marked as read", result)
}

// MarkAllRead handles PATCH /notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetString("userID")

	modified, err := h.Service.MarkAllAsRead(userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.JSONSuccessMessage(c, "All notifications marked as read", gin.H{"modifiedCount": modified})
}

// ListCompany handles GET /notifications/company/list.
func (h *NotificationHandler) ListCompany(c *gin.Context) {
	userID := c.GetString("userID")
	query := notificationListQuery(c)

	items, total, err := h.Service.ListCompany(userID, query)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	meta := utils.Meta{Page: query.Pagination.Page, Limit: query.Pagination.Limit, Total: total}
	utils.JSONSuccessList(c, meta, items)
}
