package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-solutions-go/pkg/token"

	"github.com/gin-gonic/gin"
)

type staticBlacklist map[string]bool

func (b staticBlacklist) Contains(_ context.Context, tok string) (bool, error) {
	return b[tok], nil
}

func newRouter(jwt *token.JWTManager, blacklist Blacklist) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/admin", AuthMiddleware(jwt, blacklist), AdminAuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	jwt := token.NewJWTManager("secret", 1, 1)
	admin, _ := jwt.GenerateToken(1, "admin@example.com", "ADMIN")
	revoked, _ := jwt.GenerateToken(1, "admin@example.com", "ADMIN")
	refresh, _ := jwt.GenerateRefreshToken(1, "admin@example.com", "ADMIN")
	editor, _ := jwt.GenerateToken(2, "ed@example.com", "EDITOR")
	r := newRouter(jwt, staticBlacklist{revoked: true})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Token " + admin, http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
		{"refresh token", "Bearer " + refresh, http.StatusUnauthorized},
		{"revoked", "Bearer " + revoked, http.StatusUnauthorized},
		{"not admin", "Bearer " + editor, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Errorf("expected %d, got %d (%s)", tc.want, w.Code, w.Body.String())
			}
		})
	}
}
