package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func authRequest(t *testing.T, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()

	var captured *gin.Context
	r := gin.New()
	r.GET("/probe", JWTAuthMiddleware(testSecret), func(c *gin.Context) {
		captured = c
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w, captured
}

func TestJWTAuthMiddlewareValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  "user-1",
		"role": RoleCustomer,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w, c := authRequest(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, c)
	assert.Equal(t, "user-1", c.GetString("userID"))
	assert.Equal(t, RoleCustomer, c.GetString("userRole"))
}

func TestJWTAuthMiddlewareRejections(t *testing.T) {
	expired := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1", "role": RoleCustomer,
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signToken(t, []byte("other-secret"), jwt.MapClaims{
		"sub": "user-1", "role": RoleCustomer,
	})
	noSubject := signToken(t, testSecret, jwt.MapClaims{"role": RoleCustomer})

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "not a bearer token", header: "Basic abc"},
		{name: "empty bearer token", header: "Bearer "},
		{name: "garbage token", header: "Bearer not.a.jwt"},
		{name: "expired token", header: "Bearer " + expired},
		{name: "wrong signing key", header: "Bearer " + wrongKey},
		{name: "missing sub claim", header: "Bearer " + noSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := authRequest(t, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
