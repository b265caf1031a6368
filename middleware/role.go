package middleware

import (
	"quickhub/utils"

	"github.com/gin-gonic/gin"
)

// Role values carried in the JWT "role" claim.
const (
	RoleCustomer = "customer"
	RoleCompany  = "company"
)

// RequireRole aborts the request unless the authenticated user carries one of
// the allowed roles. It must run after JWTAuthMiddleware.
func RequireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("userRole")
		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}
		utils.RespondError(c, utils.NewForbidden("Access denied."))
		c.Abort()
	}
}
