package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context keys for authenticated user data.
const (
	ContextKeyUserID = "auth_user_id"
	ContextKeyEmail  = "auth_email"
)

// Middleware authenticates requests from the session cookie.
type Middleware struct {
	tokens      *TokenManager
	publicPaths map[string]bool
}

func NewMiddleware(tokens *TokenManager) *Middleware {
	publicPaths := map[string]bool{
		"/health":   true,
		"/ping":     true,
		"/register": true,
		"/login":    true,
	}
	return &Middleware{
		tokens:      tokens,
		publicPaths: publicPaths,
	}
}

// Handler returns a Gin middleware that validates the jwt cookie and injects
// the caller's identity into the request context.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.isPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		cookie, err := c.Cookie(CookieName)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}

		claims, err := m.tokens.Validate(cookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired session",
			})
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)
		c.Next()
	}
}

func (m *Middleware) isPublicPath(path string) bool {
	return m.publicPaths[path]
}

// GetUserID extracts the authenticated user's id from the Gin context.
// Returns 0 when the request is unauthenticated.
func GetUserID(c *gin.Context) uint {
	if id, exists := c.Get(ContextKeyUserID); exists {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}

// SetSessionCookie writes the HTTP-only session cookie.
func SetSessionCookie(c *gin.Context, token string, maxAgeSeconds int, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, token, maxAgeSeconds, "/", "", secure, true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}
