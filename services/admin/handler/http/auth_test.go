package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rajeshk/portfolio/internal/pkg/models"
	"github.com/rajeshk/portfolio/services/admin"
	"github.com/rajeshk/portfolio/services/admin/mocks"
)

func setupAuthTest(t *testing.T, method, path, body string) (*mocks.MockAdminUC, *AuthHandler, echo.Context, *httptest.ResponseRecorder, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockAdminUC := mocks.NewMockAdminUC(ctrl)
	authHandler := NewAuthHandler(mockAdminUC)

	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return mockAdminUC, authHandler, c, rec, ctrl
}

func TestLogin_Success(t *testing.T) {
	requestBody := `{"username": "rajesh", "password": "secret123"}`
	mockAdminUC, authHandler, c, rec, ctrl := setupAuthTest(t, http.MethodPost, "/admin/login", requestBody)
	defer ctrl.Finish()

	mockAdminUC.EXPECT().
		Login(gomock.Any(), &models.AdminLoginRequest{Username: "rajesh", Password: "secret123"}).
		Return(&models.LoginChallenge{RequiresOTP: true, AdminID: "abc123"}, nil)

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["requiresOTP"])
	assert.Equal(t, "abc123", response["adminId"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	requestBody := `{"username": "rajesh", "password": "wrong"}`
	mockAdminUC, authHandler, c, rec, ctrl := setupAuthTest(t, http.MethodPost, "/admin/login", requestBody)
	defer ctrl.Finish()

	mockAdminUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, admin.ErrInvalidCredentials)

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// The error payload is a bare message the client surfaces verbatim
	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Invalid credentials", response["message"])
	assert.Len(t, response, 1)
}

func TestLogin_MissingFields(t *testing.T) {
	requestBody := `{"username": "", "password": ""}`
	_, authHandler, c, rec, ctrl := setupAuthTest(t, http.MethodPost, "/admin/login", requestBody)
	defer ctrl.Finish()

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Username and password are required", response["message"])
}

func TestLogin_UsecaseFailure(t *testing.T) {
	requestBody := `{"username": "rajesh", "password": "secret123"}`
	mockAdminUC, authHandler, c, rec, ctrl := setupAuthTest(t, http.MethodPost, "/admin/login", requestBody)
	defer ctrl.Finish()

	mockAdminUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// Internal details never reach the client
	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Something went wrong", response["message"])
}

func TestVerifyOTP_Success(t *testing.T) {
	requestBody := `{"adminId": "abc123", "otp": "123456"}`
	mockAdminUC, authHandler, c, rec, ctrl := setupAuthTest(t, http.MethodPost, "/admin/verify-otp", requestBody)
	defer ctrl.Finish()

	mockAdminUC.EXPECT().
		VerifyOTP(gomock.Any(), &models.VerifyOTPRequest{AdminID: "abc123", OTP: "123456"}).
		Return(&models.AuthResponse{
			Token: "tok_xyz",
			Admin: &models.AdminProfile{ID: "abc123", Username: "rajesh", Name: "Rajesh"},
		}, nil)

	err := authHandler.VerifyOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "tok_xyz", response["token"])

	adminData, ok := response["admin"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Rajesh", adminData["name"])
}

func TestVerifyOTP_Expired(t *testing.T) {
	requestBody := `{"adminId": "abc123", "otp": "000000"}`
	mockAdminUC, authHandler, c, rec, ctrl := setupAuthTest(t, http.MethodPost, "/admin/verify-otp", requestBody)
	defer ctrl.Finish()

	mockAdminUC.EXPECT().
		VerifyOTP(gomock.Any(), gomock.Any()).
		Return(nil, admin.ErrOTPExpired)

	err := authHandler.VerifyOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "OTP expired", response["message"])
}

func TestVerifyOTP_MissingFields(t *testing.T) {
	requestBody := `{"adminId": "", "otp": ""}`
	_, authHandler, c, rec, ctrl := setupAuthTest(t, http.MethodPost, "/admin/verify-otp", requestBody)
	defer ctrl.Finish()

	err := authHandler.VerifyOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_InvalidPayload(t *testing.T) {
	requestBody := `{invalid_json}`
	_, authHandler, c, rec, ctrl := setupAuthTest(t, http.MethodPost, "/admin/login", requestBody)
	defer ctrl.Finish()

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Invalid request payload", response["message"])
}
