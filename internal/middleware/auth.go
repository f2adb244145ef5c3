// Package middleware holds the gin middleware of the site backend.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"ai-solutions-go/pkg/log"
	"ai-solutions-go/pkg/token"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ClaimsKey = "claims"
	TokenKey  = "accessToken"
)

// Blacklist reports whether an access token has been revoked.
type Blacklist interface {
	Contains(ctx context.Context, token string) (bool, error)
}

// AuthMiddleware verifies the bearer access token and stores its claims in the context.
// blacklist may be nil.
func AuthMiddleware(jwtManager *token.JWTManager, blacklist Blacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		const bearerPrefix = "Bearer "
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			abort(c, http.StatusUnauthorized, "missing or malformed authorization header")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)

		claims, err := jwtManager.VerifyToken(tokenString)
		if err != nil || claims.TokenType != token.TypeAccess {
			abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		if blacklist != nil {
			revoked, err := blacklist.Contains(c.Request.Context(), tokenString)
			if err != nil {
				log.Error("failed to check token blacklist", err)
				abort(c, http.StatusInternalServerError, "failed to verify token")
				return
			}
			if revoked {
				abort(c, http.StatusUnauthorized, "token has been revoked")
				return
			}
		}

		c.Set(ClaimsKey, claims)
		c.Set(TokenKey, tokenString)
		c.Next()
	}
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"code": status, "message": message, "data": nil})
}
