package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rajeshk/portfolio/internal/pkg/models"
	"github.com/rajeshk/portfolio/services/portfolio/mocks"
)

func setupHandlerTest(t *testing.T, method, path, body string) (*mocks.MockPortfolioUC, *PortfolioHandler, echo.Context, *httptest.ResponseRecorder, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockUC := mocks.NewMockPortfolioUC(ctrl)
	handler := NewPortfolioHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return mockUC, handler, c, rec, ctrl
}

func TestSubmitContact_Success(t *testing.T) {
	requestBody := `{"name": "Visitor", "email": "visitor@example.com", "message": "Hello"}`
	mockUC, handler, c, rec, ctrl := setupHandlerTest(t, http.MethodPost, "/contacts", requestBody)
	defer ctrl.Finish()

	mockUC.EXPECT().
		SubmitContact(gomock.Any(), gomock.Any()).
		Return(nil)

	err := handler.SubmitContact(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
}

func TestSubmitContact_InvalidPayload(t *testing.T) {
	requestBody := `{invalid_json}`
	_, handler, c, rec, ctrl := setupHandlerTest(t, http.MethodPost, "/contacts", requestBody)
	defer ctrl.Finish()

	err := handler.SubmitContact(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListContacts_Success(t *testing.T) {
	mockUC, handler, c, rec, ctrl := setupHandlerTest(t, http.MethodGet, "/admin/contacts", "")
	defer ctrl.Finish()

	contacts := []models.ContactMessage{
		{ID: uuid.New(), Name: "Visitor", Email: "visitor@example.com", Message: "Hello", CreatedAt: time.Now()},
	}

	mockUC.EXPECT().
		ListContacts(gomock.Any()).
		Return(contacts, nil)

	err := handler.ListContacts(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)

	data, ok := response["data"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, data, 1)
}

func TestReplyContact_Success(t *testing.T) {
	id := uuid.New()
	requestBody := `{"replyMessage": "Thanks for reaching out"}`
	mockUC, handler, c, rec, ctrl := setupHandlerTest(t, http.MethodPost, "/admin/contacts/"+id.String()+"/reply", requestBody)
	defer ctrl.Finish()

	c.SetParamNames("id")
	c.SetParamValues(id.String())

	mockUC.EXPECT().
		ReplyContact(gomock.Any(), id, "Thanks for reaching out").
		Return(nil)

	err := handler.ReplyContact(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReplyContact_EmptyMessage(t *testing.T) {
	id := uuid.New()
	requestBody := `{"replyMessage": ""}`
	_, handler, c, rec, ctrl := setupHandlerTest(t, http.MethodPost, "/admin/contacts/"+id.String()+"/reply", requestBody)
	defer ctrl.Finish()

	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := handler.ReplyContact(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkContactReplied_InvalidID(t *testing.T) {
	requestBody := `{"replied": true}`
	_, handler, c, rec, ctrl := setupHandlerTest(t, http.MethodPatch, "/admin/contacts/not-a-uuid/replied", requestBody)
	defer ctrl.Finish()

	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.MarkContactReplied(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
