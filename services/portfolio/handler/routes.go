package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rajeshk/portfolio/internal/pkg/middleware"
	"github.com/rajeshk/portfolio/internal/pkg/models"
	httphandler "github.com/rajeshk/portfolio/services/portfolio/handler/http"
)

// Handler coordinates the portfolio content handlers
type Handler struct {
	portfolioHandler *httphandler.PortfolioHandler
	cfg              *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(portfolioHandler *httphandler.PortfolioHandler, cfg *models.Config) *Handler {
	return &Handler{
		portfolioHandler: portfolioHandler,
		cfg:              cfg,
	}
}

// RegisterRoutes registers the public and admin content routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	e.GET("/projects", h.portfolioHandler.ListProjects)
	e.GET("/gallery", h.portfolioHandler.ListGallery)
	e.GET("/testimonials", h.portfolioHandler.ListTestimonials)
	e.POST("/testimonials", h.portfolioHandler.SubmitTestimonial)
	e.POST("/contacts", h.portfolioHandler.SubmitContact)

	// Protected admin routes with JWT middleware
	adminGroup := e.Group("/admin", middleware.JWTAuthMiddleware(h.cfg.JWT))

	adminGroup.POST("/projects", h.portfolioHandler.CreateProject)
	adminGroup.PUT("/projects/:id", h.portfolioHandler.UpdateProject)
	adminGroup.DELETE("/projects/:id", h.portfolioHandler.DeleteProject)

	adminGroup.POST("/gallery", h.portfolioHandler.CreateGalleryItem)
	adminGroup.PUT("/gallery/:id", h.portfolioHandler.UpdateGalleryItem)
	adminGroup.DELETE("/gallery/:id", h.portfolioHandler.DeleteGalleryItem)

	adminGroup.GET("/testimonials", h.portfolioHandler.ListAllTestimonials)
	adminGroup.PUT("/testimonials/:id/status", h.portfolioHandler.UpdateTestimonialStatus)
	adminGroup.DELETE("/testimonials/:id", h.portfolioHandler.DeleteTestimonial)

	adminGroup.GET("/contacts", h.portfolioHandler.ListContacts)
	adminGroup.PATCH("/contacts/:id/replied", h.portfolioHandler.MarkContactReplied)
	adminGroup.POST("/contacts/:id/reply", h.portfolioHandler.ReplyContact)
	adminGroup.DELETE("/contacts/:id", h.portfolioHandler.DeleteContact)
}
