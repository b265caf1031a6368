package middleware

import (
	"context"
	"strings"
	"time"

	"quickhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token on every request and stores the
// authenticated identity in the request context under "userID" and "userRole".
// Tokens are issued by the external auth service; verified token hashes are
// cached in Redis so repeat requests skip signature verification.
func JWTAuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, utils.NewUnauthorized("Insufficient authorization"))
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			utils.RespondError(c, utils.NewUnauthorized("Insufficient authorization"))
			c.Abort()
			return
		}

		computedHash := utils.HashToken(tokenString)

		// Fast path: a previously verified token hash in the auth cache.
		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cached, err := authCache.Get(ctx, utils.AuthCachePrefix+computedHash).Result()
			if err == nil {
				parts := strings.SplitN(cached, ":", 2)
				if len(parts) == 2 && parts[0] != "" {
					_ = authCache.Expire(ctx, utils.AuthCachePrefix+computedHash, time.Hour).Err()
					c.Set("userID", parts[0])
					c.Set("userRole", parts[1])
					c.Next()
					return
				}
			} else if err != redis.Nil {
				zap.L().Warn("Error retrieving auth cache key, verifying token directly", zap.Error(err))
			}
		}

		userID, role, err := utils.ExtractIdentityFromToken(tokenString, secret)
		if err != nil || userID == "" {
			utils.RespondError(c, utils.NewUnauthorized("Insufficient authorization"))
			c.Abort()
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, utils.AuthCachePrefix+computedHash, userID+":"+role, time.Hour).Err()
		}

		c.Set("userID", userID)
		c.Set("userRole", role)
		c.Next()
	}
}
