package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination carries the parsed page window. Pages are 1-indexed and the
// limit is clamped to [1,100].
type Pagination struct {
	Page  int
	Limit int
}

// Skip returns the number of documents to skip for the current page.
func (p Pagination) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// ParsePagination reads page/limit query parameters with a default limit of 20.
func ParsePagination(c *gin.Context) Pagination {
	page := 1
	limit := 20
	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}
	return Pagination{Page: page, Limit: limit}
}
