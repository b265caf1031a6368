package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func roleRequest(t *testing.T, role string, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()

	r := gin.New()
	r.GET("/probe", func(c *gin.Context) {
		c.Set("userRole", role)
	}, RequireRole(allowed...), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/probe", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		allowed    []string
		wantStatus int
	}{
		{name: "matching role passes", role: RoleCompany, allowed: []string{RoleCompany}, wantStatus: http.StatusOK},
		{name: "any of several roles passes", role: RoleCustomer, allowed: []string{RoleCompany, RoleCustomer}, wantStatus: http.StatusOK},
		{name: "wrong role is forbidden", role: RoleCustomer, allowed: []string{RoleCompany}, wantStatus: http.StatusForbidden},
		{name: "missing role is forbidden", role: "", allowed: []string{RoleCompany}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := roleRequest(t, tt.role, tt.allowed...)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
