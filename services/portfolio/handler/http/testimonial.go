package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rajeshk/portfolio/internal/pkg/models"
	"github.com/rajeshk/portfolio/internal/utils"
)

// statusUpdateRequest is the body of PUT /admin/testimonials/:id/status
type statusUpdateRequest struct {
	Status string `json:"status"`
}

// ListTestimonials handles GET /testimonials (approved entries only)
func (h *PortfolioHandler) ListTestimonials(c echo.Context) error {
	testimonials, err := h.portfolioUC.ListTestimonials(c.Request().Context(), false)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list testimonials")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Testimonials retrieved successfully", testimonials)
}

// ListAllTestimonials handles GET /admin/testimonials (every status)
func (h *PortfolioHandler) ListAllTestimonials(c echo.Context) error {
	testimonials, err := h.portfolioUC.ListTestimonials(c.Request().Context(), true)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list testimonials")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Testimonials retrieved successfully", testimonials)
}

// SubmitTestimonial handles POST /testimonials (visitor submission)
func (h *PortfolioHandler) SubmitTestimonial(c echo.Context) error {
	var testimonial models.Testimonial
	if err := c.Bind(&testimonial); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.portfolioUC.SubmitTestimonial(c.Request().Context(), &testimonial); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Testimonial submitted successfully", testimonial)
}

// UpdateTestimonialStatus handles PUT /admin/testimonials/:id/status
func (h *PortfolioHandler) UpdateTestimonialStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid testimonial ID")
	}

	var request statusUpdateRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.portfolioUC.UpdateTestimonialStatus(c.Request().Context(), id, request.Status); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Testimonial status updated successfully", nil)
}

// DeleteTestimonial handles DELETE /admin/testimonials/:id
func (h *PortfolioHandler) DeleteTestimonial(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid testimonial ID")
	}

	if err := h.portfolioUC.DeleteTestimonial(c.Request().Context(), id); err != nil {
		return utils.NotFoundResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Testimonial deleted successfully", nil)
}
