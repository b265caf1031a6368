package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Meta is the pagination block returned alongside list data.
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// JSONSuccess writes the standard success envelope.
func JSONSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"status": "success", "data": data})
}

// JSONSuccessMessage includes a human-readable message with the data.
func JSONSuccessMessage(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": message, "data": data})
}

// JSONSuccessList writes a paginated success envelope.
func JSONSuccessList(c *gin.Context, meta Meta, data any) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "meta": meta, "data": data})
}
