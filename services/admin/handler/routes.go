package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rajeshk/portfolio/internal/pkg/models"
	httphandler "github.com/rajeshk/portfolio/services/admin/handler/http"
)

// Handler coordinates the admin service handlers
type Handler struct {
	authHandler *httphandler.AuthHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(authHandler *httphandler.AuthHandler, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the admin auth routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	adminGroup := e.Group("/admin")
	adminGroup.POST("/login", h.authHandler.Login)
	adminGroup.POST("/verify-otp", h.authHandler.VerifyOTP)
}
