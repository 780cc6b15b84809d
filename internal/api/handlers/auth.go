package handlers

import (
	"net/http"

	"company-portal-backend/internal/auth"
	apperrors "company-portal-backend/internal/errors"
	"company-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	authService service.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successfully",
		"data": gin.H{
			"user":  result.User,
			"token": result.Token,
		},
	})
}

// LoginCheck handles GET /api/login. The route exists only as a named target
// for redirects, so it always reports the caller as unauthenticated. The
// message deliberately has no trailing period, unlike the middleware body,
// because existing clients match on the exact string.
func (h *AuthHandler) LoginCheck(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"message": "Unauthenticated"})
}

// Logout handles POST /api/logout. Only the token used on this request is
// revoked; other sessions of the same user stay valid.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID, ok := auth.CurrentTokenID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": apperrors.ErrInvalidToken.Error()})
		return
	}

	if err := h.authService.Logout(tokenID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logout successfully"})
}

// CurrentUser handles GET /api/user and returns the authenticated user
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": apperrors.ErrInvalidToken.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
