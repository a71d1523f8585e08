package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rajeshk/portfolio/internal/pkg/models"
	"github.com/rajeshk/portfolio/internal/utils"
	"github.com/rajeshk/portfolio/services/admin"
)

// AuthHandler handles the admin login endpoints
type AuthHandler struct {
	adminUC admin.AdminUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(adminUC admin.AdminUC) *AuthHandler {
	return &AuthHandler{adminUC: adminUC}
}

// Login handles POST /admin/login. Success returns the OTP challenge,
// failures return a bare {"message": "..."} the client shows verbatim.
func (h *AuthHandler) Login(c echo.Context) error {
	var request models.AdminLoginRequest
	if err := c.Bind(&request); err != nil {
		return utils.AuthErrorResponse(c, http.StatusBadRequest, "Invalid request payload")
	}

	if request.Username == "" || request.Password == "" {
		return utils.AuthErrorResponse(c, http.StatusBadRequest, "Username and password are required")
	}

	challenge, err := h.adminUC.Login(c.Request().Context(), &request)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			return utils.AuthErrorResponse(c, http.StatusUnauthorized, err.Error())
		}
		return utils.AuthErrorResponse(c, http.StatusInternalServerError, "Something went wrong")
	}

	return c.JSON(http.StatusOK, challenge)
}

// VerifyOTP handles POST /admin/verify-otp
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var request models.VerifyOTPRequest
	if err := c.Bind(&request); err != nil {
		return utils.AuthErrorResponse(c, http.StatusBadRequest, "Invalid request payload")
	}

	if request.AdminID == "" || request.OTP == "" {
		return utils.AuthErrorResponse(c, http.StatusBadRequest, "adminId and otp are required")
	}

	response, err := h.adminUC.VerifyOTP(c.Request().Context(), &request)
	if err != nil {
		if errors.Is(err, admin.ErrOTPExpired) {
			return utils.AuthErrorResponse(c, http.StatusUnauthorized, err.Error())
		}
		return utils.AuthErrorResponse(c, http.StatusInternalServerError, "Something went wrong")
	}

	return c.JSON(http.StatusOK, response)
}
