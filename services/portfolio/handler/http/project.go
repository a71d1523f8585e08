package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rajeshk/portfolio/internal/pkg/models"
	"github.com/rajeshk/portfolio/internal/utils"
)

// ListProjects handles GET /projects
func (h *PortfolioHandler) ListProjects(c echo.Context) error {
	filter := &models.ProjectFilter{
		Category: c.QueryParam("category"),
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	filter.Featured, _ = strconv.ParseBool(c.QueryParam("featured"))

	page, err := h.portfolioUC.ListProjects(c.Request().Context(), filter)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list projects")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Projects retrieved successfully", page)
}

// CreateProject handles POST /admin/projects
func (h *PortfolioHandler) CreateProject(c echo.Context) error {
	var project models.Project
	if err := c.Bind(&project); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.portfolioUC.CreateProject(c.Request().Context(), &project); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Project created successfully", project)
}

// UpdateProject handles PUT /admin/projects/:id
func (h *PortfolioHandler) UpdateProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	var project models.Project
	if err := c.Bind(&project); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	project.ID = id

	if err := h.portfolioUC.UpdateProject(c.Request().Context(), &project); err != nil {
		return utils.NotFoundResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Project updated successfully", project)
}

// DeleteProject handles DELETE /admin/projects/:id
func (h *PortfolioHandler) DeleteProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	if err := h.portfolioUC.DeleteProject(c.Request().Context(), id); err != nil {
		return utils.NotFoundResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Project deleted successfully", nil)
}
