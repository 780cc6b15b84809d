package auth

import (
	"net/http"
	"strings"

	"company-portal-backend/internal/database/models"
	apperrors "company-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// Middleware provides the per-request access-policy gates
type Middleware struct {
	service *Service
}

// NewMiddleware creates new access-policy middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth validates the bearer token and sets the user context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": apperrors.ErrInvalidToken.Error()})
			c.Abort()
			return
		}

		user, tokenID, err := m.service.Authenticate(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": apperrors.ErrInvalidToken.Error()})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Set("email", user.Email)
		c.Set("token_id", tokenID)

		c.Next()
	}
}

// RequireAdmin gates a route on the authenticated user's admin flag.
// Must run after RequireAuth.
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": apperrors.ErrInvalidToken.Error()})
			c.Abort()
			return
		}

		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": apperrors.ErrNotAdmin.Error()})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireGuest makes a route reachable only without a valid session. An
// authenticated caller gets the fixed 403 "Unauthenticated" payload the
// login-check route serves.
func (m *Middleware) RequireGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if _, _, err := m.service.Authenticate(tokenString); err == nil {
				c.JSON(http.StatusForbidden, gin.H{"message": "Unauthenticated"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// CurrentUser extracts the authenticated user from the request context
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// CurrentTokenID extracts the presented token's row ID from the context
func CurrentTokenID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("token_id")
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return "", false
	}
	return token, true
}
