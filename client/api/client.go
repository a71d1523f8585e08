package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/rajeshk/portfolio/internal/pkg/models"
)

// ErrNetwork is returned whenever the request never produced an HTTP
// response. Callers show a generic network message instead of transport
// internals.
var ErrNetwork = errors.New("network error")

// APIError carries the server's message verbatim along with the status code
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether the error is a 401 from the server
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// Client is a typed REST client for the portfolio backend
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
	token   string
}

// NewClient creates a new API client for the given base URL
func NewClient(baseURL string, httpClient *http.Client, log *logrus.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		log:     log,
	}
}

// SetToken sets the bearer token attached to subsequent requests
func (c *Client) SetToken(token string) {
	c.token = token
}

// messagePayload is the bare error body of the auth endpoints
type messagePayload struct {
	Message string `json:"message"`
}

// envelope is the wrapped body of the content endpoints
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// do executes a request and returns the raw response body. Transport
// failures collapse to ErrNetwork; HTTP errors carry the server message.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, bare bool) ([]byte, error) {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
	}).Debug("api request")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).Debug("api transport failure")
		return nil, ErrNetwork
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, ErrNetwork
	}
	data := buf.Bytes()

	c.log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": resp.StatusCode,
	}).Debug("api response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.errorFrom(resp.StatusCode, data, bare)
	}

	return data, nil
}

// errorFrom extracts the server's message from an error body
func (c *Client) errorFrom(statusCode int, data []byte, bare bool) error {
	message := ""
	if bare {
		var payload messagePayload
		if err := json.Unmarshal(data, &payload); err == nil {
			message = payload.Message
		}
	} else {
		var env envelope
		if err := json.Unmarshal(data, &env); err == nil {
			if env.Error != "" {
				message = env.Error
			} else {
				message = env.Message
			}
		}
	}
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", statusCode)
	}

	return &APIError{StatusCode: statusCode, Message: message}
}

// unwrap decodes the data field of a wrapped content response
func unwrap(data []byte, v interface{}) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if v == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// Login posts credentials and returns the OTP challenge
func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginChallenge, error) {
	data, err := c.do(ctx, http.MethodPost, "/admin/login", &models.AdminLoginRequest{
		Username: username,
		Password: password,
	}, true)
	if err != nil {
		return nil, err
	}

	var challenge models.LoginChallenge
	if err := json.Unmarshal(data, &challenge); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}

	return &challenge, nil
}

// VerifyOTP posts the OTP and returns the issued token plus admin profile
func (c *Client) VerifyOTP(ctx context.Context, adminID, otp string) (*models.AuthResponse, error) {
	data, err := c.do(ctx, http.MethodPost, "/admin/verify-otp", &models.VerifyOTPRequest{
		AdminID: adminID,
		OTP:     otp,
	}, true)
	if err != nil {
		return nil, err
	}

	var auth models.AuthResponse
	if err := json.Unmarshal(data, &auth); err != nil {
		return nil, fmt.Errorf("failed to decode verify response: %w", err)
	}

	return &auth, nil
}

// ListProjects fetches the public project listing
func (c *Client) ListProjects(ctx context.Context, category string, page, limit int) (*models.ProjectPage, error) {
	path := fmt.Sprintf("/projects?page=%d&limit=%d", page, limit)
	if category != "" {
		path += "&category=" + category
	}

	data, err := c.do(ctx, http.MethodGet, path, nil, false)
	if err != nil {
		return nil, err
	}

	var result models.ProjectPage
	if err := unwrap(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateProject creates a project via the admin API
func (c *Client) CreateProject(ctx context.Context, project *models.Project) error {
	_, err := c.do(ctx, http.MethodPost, "/admin/projects", project, false)
	return err
}

// UpdateProject updates a project via the admin API
func (c *Client) UpdateProject(ctx context.Context, project *models.Project) error {
	_, err := c.do(ctx, http.MethodPut, "/admin/projects/"+project.ID.String(), project, false)
	return err
}

// DeleteProject deletes a project via the admin API
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/admin/projects/"+id, nil, false)
	return err
}

// ListGallery fetches the public gallery listing
func (c *Client) ListGallery(ctx context.Context, category string, page, limit int) (*models.GalleryPage, error) {
	path := fmt.Sprintf("/gallery?page=%d&limit=%d", page, limit)
	if category != "" {
		path += "&category=" + category
	}

	data, err := c.do(ctx, http.MethodGet, path, nil, false)
	if err != nil {
		return nil, err
	}

	var result models.GalleryPage
	if err := unwrap(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateGalleryItem creates a gallery item via the admin API
func (c *Client) CreateGalleryItem(ctx context.Context, item *models.GalleryItem) error {
	_, err := c.do(ctx, http.MethodPost, "/admin/gallery", item, false)
	return err
}

// DeleteGalleryItem deletes a gallery item via the admin API
func (c *Client) DeleteGalleryItem(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/admin/gallery/"+id, nil, false)
	return err
}

// ListTestimonials fetches testimonials; admin listings include every status
func (c *Client) ListTestimonials(ctx context.Context, all bool) ([]models.Testimonial, error) {
	path := "/testimonials"
	if all {
		path = "/admin/testimonials"
	}

	data, err := c.do(ctx, http.MethodGet, path, nil, false)
	if err != nil {
		return nil, err
	}

	var result []models.Testimonial
	if err := unwrap(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateTestimonialStatus changes a testimonial's moderation status
func (c *Client) UpdateTestimonialStatus(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	_, err := c.do(ctx, http.MethodPut, "/admin/testimonials/"+id+"/status", body, false)
	return err
}

// DeleteTestimonial deletes a testimonial via the admin API
func (c *Client) DeleteTestimonial(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/admin/testimonials/"+id, nil, false)
	return err
}

// ListContacts fetches the admin contact inbox
func (c *Client) ListContacts(ctx context.Context) ([]models.ContactMessage, error) {
	data, err := c.do(ctx, http.MethodGet, "/admin/contacts", nil, false)
	if err != nil {
		return nil, err
	}

	var result []models.ContactMessage
	if err := unwrap(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ReplyContact stores a reply to a contact message
func (c *Client) ReplyContact(ctx context.Context, id, replyMessage string) error {
	_, err := c.do(ctx, http.MethodPost, "/admin/contacts/"+id+"/reply",
		&models.ContactReplyRequest{ReplyMessage: replyMessage}, false)
	return err
}

// MarkContactReplied toggles the replied flag on a contact message
func (c *Client) MarkContactReplied(ctx context.Context, id string, replied bool) error {
	body := map[string]bool{"replied": replied}
	_, err := c.do(ctx, http.MethodPatch, "/admin/contacts/"+id+"/replied", body, false)
	return err
}
