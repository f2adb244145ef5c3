package middleware

import (
	"net/http"

	"ai-solutions-go/internal/model"
	"ai-solutions-go/pkg/token"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware rejects callers whose token does not carry the ADMIN role.
// It must run after AuthMiddleware.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ClaimsKey)
		if !exists {
			abort(c, http.StatusInternalServerError, "missing authentication context")
			return
		}
		claims, ok := value.(*token.CustomClaims)
		if !ok {
			abort(c, http.StatusInternalServerError, "unexpected authentication context")
			return
		}
		if claims.Role != model.RoleAdmin {
			abort(c, http.StatusForbidden, "admin role required")
			return
		}
		c.Next()
	}
}
