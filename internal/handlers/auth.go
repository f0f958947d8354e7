package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/praxishq/praxis/internal/config"
	"github.com/praxishq/praxis/internal/middleware"
	"github.com/praxishq/praxis/internal/services"
	"github.com/praxishq/praxis/pkg/response"
	"gorm.io/gorm"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: services.NewAuthService(db, &cfg.JWT),
	}
}

// Login handles user login
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		response.Unauthorized(c, err.Error())
		return
	}

	response.Success(c, resp)
}

// GetCurrentUser returns the current logged-in user
// GET /api/auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.authService.GetUserByID(middleware.GetUserID(c))
	if err != nil {
		response.NotFound(c, "user not found")
		return
	}

	response.Success(c, user)
}

// Logout handles user logout (client-side token removal)
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Success(c, gin.H{"message": "logged out successfully"})
}

// CreateAdminIfNotExists creates the default admin user
func (h *AuthHandler) CreateAdminIfNotExists() error {
	return h.authService.CreateAdminIfNotExists()
}
