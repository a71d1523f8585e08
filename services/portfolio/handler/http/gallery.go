package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rajeshk/portfolio/internal/pkg/models"
	"github.com/rajeshk/portfolio/internal/utils"
)

// ListGallery handles GET /gallery
func (h *PortfolioHandler) ListGallery(c echo.Context) error {
	filter := &models.GalleryFilter{
		Category: c.QueryParam("category"),
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	page, err := h.portfolioUC.ListGallery(c.Request().Context(), filter)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list gallery")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Gallery retrieved successfully", page)
}

// CreateGalleryItem handles POST /admin/gallery
func (h *PortfolioHandler) CreateGalleryItem(c echo.Context) error {
	var item models.GalleryItem
	if err := c.Bind(&item); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.portfolioUC.CreateGalleryItem(c.Request().Context(), &item); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Gallery item created successfully", item)
}

// UpdateGalleryItem handles PUT /admin/gallery/:id
func (h *PortfolioHandler) UpdateGalleryItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid gallery item ID")
	}

	var item models.GalleryItem
	if err := c.Bind(&item); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	item.ID = id

	if err := h.portfolioUC.UpdateGalleryItem(c.Request().Context(), &item); err != nil {
		return utils.NotFoundResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Gallery item updated successfully", item)
}

// DeleteGalleryItem handles DELETE /admin/gallery/:id
func (h *PortfolioHandler) DeleteGalleryItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid gallery item ID")
	}

	if err := h.portfolioUC.DeleteGalleryItem(c.Request().Context(), id); err != nil {
		return utils.NotFoundResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Gallery item deleted successfully", nil)
}
