package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationFor(t *testing.T, rawQuery string) Pagination {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return ParsePagination(c)
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		rawQuery  string
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", rawQuery: "", wantPage: 1, wantLimit: 20},
		{name: "explicit values", rawQuery: "page=3&limit=50", wantPage: 3, wantLimit: 50},
		{name: "limit clamped to 100", rawQuery: "limit=500", wantPage: 1, wantLimit: 100},
		{name: "zero page ignored", rawQuery: "page=0", wantPage: 1, wantLimit: 20},
		{name: "zero limit clamped to 1", rawQuery: "limit=0", wantPage: 1, wantLimit: 1},
		{name: "negative values clamped", rawQuery: "page=-2&limit=-5", wantPage: 1, wantLimit: 1},
		{name: "garbage ignored", rawQuery: "page=abc&limit=xyz", wantPage: 1, wantLimit: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := paginationFor(t, tt.rawQuery)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestPaginationSkip(t *testing.T) {
	assert.Equal(t, int64(0), Pagination{Page: 1, Limit: 20}.Skip())
	assert.Equal(t, int64(20), Pagination{Page: 2, Limit: 20}.Skip())
	assert.Equal(t, int64(90), Pagination{Page: 10, Limit: 10}.Skip())
}
