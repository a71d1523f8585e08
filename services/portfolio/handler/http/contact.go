package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rajeshk/portfolio/internal/pkg/models"
	"github.com/rajeshk/portfolio/internal/utils"
)

// repliedUpdateRequest is the body of PATCH /admin/contacts/:id/replied
type repliedUpdateRequest struct {
	Replied bool `json:"replied"`
}

// SubmitContact handles POST /contacts (public visitor form)
func (h *PortfolioHandler) SubmitContact(c echo.Context) error {
	var contact models.ContactMessage
	if err := c.Bind(&contact); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.portfolioUC.SubmitContact(c.Request().Context(), &contact); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Message sent successfully", nil)
}

// ListContacts handles GET /admin/contacts
func (h *PortfolioHandler) ListContacts(c echo.Context) error {
	contacts, err := h.portfolioUC.ListContacts(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list contacts")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Contacts retrieved successfully", contacts)
}

// MarkContactReplied handles PATCH /admin/contacts/:id/replied
func (h *PortfolioHandler) MarkContactReplied(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid contact ID")
	}

	var request repliedUpdateRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.portfolioUC.MarkContactReplied(c.Request().Context(), id, request.Replied); err != nil {
		return utils.NotFoundResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Contact updated successfully", nil)
}

// ReplyContact handles POST /admin/contacts/:id/reply
func (h *PortfolioHandler) ReplyContact(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid contact ID")
	}

	var request models.ContactReplyRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if request.ReplyMessage == "" {
		return utils.BadRequestResponse(c, "replyMessage is required")
	}

	if err := h.portfolioUC.ReplyContact(c.Request().Context(), id, request.ReplyMessage); err != nil {
		return utils.NotFoundResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reply stored successfully", nil)
}

// DeleteContact handles DELETE /admin/contacts/:id
func (h *PortfolioHandler) DeleteContact(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid contact ID")
	}

	if err := h.portfolioUC.DeleteContact(c.Request().Context(), id); err != nil {
		return utils.NotFoundResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Contact deleted successfully", nil)
}
