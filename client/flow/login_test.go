package flow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajeshk/portfolio/client/api"
	"github.com/rajeshk/portfolio/client/session"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

// newAuthServer mimics the backend's two auth endpoints with the canonical
// fixture data: valid login rajesh/secret yields admin ID abc123, the valid
// OTP is 123456, and success issues tok_xyz for admin Rajesh.
func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/admin/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.AdminLoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		if req.Username != "rajesh" || req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(models.LoginChallenge{RequiresOTP: true, AdminID: "abc123"})
	})
	mux.HandleFunc("/admin/verify-otp", func(w http.ResponseWriter, r *http.Request) {
		var req models.VerifyOTPRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		if req.AdminID != "abc123" || req.OTP != "123456" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "OTP expired"})
			return
		}
		json.NewEncoder(w).Encode(models.AuthResponse{
			Token: "tok_xyz",
			Admin: &models.AdminProfile{ID: "abc123", Username: "rajesh", Name: "Rajesh"},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func setupFlowTest(t *testing.T, baseURL string) (*LoginFlow, *session.Store) {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	store, err := session.NewStore(filepath.Join(t.TempDir(), "session.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Load())

	client := api.NewClient(baseURL, nil, log)
	return NewLoginFlow(client, store, log), store
}

func TestSubmitCredentials_InvalidStaysOnCredentials(t *testing.T) {
	server := newAuthServer(t)
	flow, _ := setupFlowTest(t, server.URL)

	err := flow.SubmitCredentials(context.Background(), "rajesh", "wrong")

	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.Equal(t, StateCredentials, flow.State())
	assert.Empty(t, flow.PendingAdminID())
}

func TestSubmitCredentials_AdvancesToOTP(t *testing.T) {
	server := newAuthServer(t)
	flow, _ := setupFlowTest(t, server.URL)

	err := flow.SubmitCredentials(context.Background(), "rajesh", "secret")

	require.NoError(t, err)
	assert.Equal(t, StateAwaitingOTP, flow.State())
	assert.Equal(t, "abc123", flow.PendingAdminID())
}

func TestSubmitCredentials_MissingChallengeStaysOnCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.LoginChallenge{RequiresOTP: false})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	flow, _ := setupFlowTest(t, server.URL)

	err := flow.SubmitCredentials(context.Background(), "rajesh", "secret")

	assert.ErrorIs(t, err, ErrUnexpectedChallenge)
	assert.Equal(t, StateCredentials, flow.State())
	assert.Empty(t, flow.PendingAdminID())
}

func TestSubmitOTP_WrongCodeStaysOnOTP(t *testing.T) {
	server := newAuthServer(t)
	flow, _ := setupFlowTest(t, server.URL)

	require.NoError(t, flow.SubmitCredentials(context.Background(), "rajesh", "secret"))

	err := flow.SubmitOTP(context.Background(), "000000")

	require.Error(t, err)
	assert.Equal(t, "OTP expired", err.Error())
	assert.Equal(t, StateAwaitingOTP, flow.State())
	assert.Equal(t, "abc123", flow.PendingAdminID())
}

func TestSubmitOTP_CompletesAndStoresSession(t *testing.T) {
	server := newAuthServer(t)
	flow, store := setupFlowTest(t, server.URL)

	require.NoError(t, flow.SubmitCredentials(context.Background(), "rajesh", "secret"))
	require.NoError(t, flow.SubmitOTP(context.Background(), "123456"))

	assert.Equal(t, StateCompleted, flow.State())
	assert.Equal(t, "tok_xyz", store.Token())
	require.NotNil(t, store.Admin())
	assert.Equal(t, "Rajesh", store.Admin().Name)
}

func TestSubmitOTP_WithoutPendingLogin(t *testing.T) {
	server := newAuthServer(t)
	flow, _ := setupFlowTest(t, server.URL)

	err := flow.SubmitOTP(context.Background(), "123456")

	assert.ErrorIs(t, err, ErrNoPendingLogin)
}

func TestBack_KeepsUsernameDropsPending(t *testing.T) {
	server := newAuthServer(t)
	flow, _ := setupFlowTest(t, server.URL)

	require.NoError(t, flow.SubmitCredentials(context.Background(), "rajesh", "secret"))
	require.NoError(t, flow.Back())

	assert.Equal(t, StateCredentials, flow.State())
	assert.Equal(t, "rajesh", flow.Username())
	assert.Empty(t, flow.PendingAdminID())

	// Verification after Back must be refused until credentials go through again
	err := flow.SubmitOTP(context.Background(), "123456")
	assert.ErrorIs(t, err, ErrNoPendingLogin)
}

func TestClose_ResetsEverything(t *testing.T) {
	server := newAuthServer(t)
	flow, _ := setupFlowTest(t, server.URL)

	require.NoError(t, flow.SubmitCredentials(context.Background(), "rajesh", "secret"))
	flow.Close()

	assert.Equal(t, StateCredentials, flow.State())
	assert.Empty(t, flow.Username())
	assert.Empty(t, flow.PendingAdminID())
}

func TestSubmitCredentials_NetworkError(t *testing.T) {
	server := newAuthServer(t)
	server.Close()
	flow, _ := setupFlowTest(t, server.URL)

	err := flow.SubmitCredentials(context.Background(), "rajesh", "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrNetwork)
	assert.Equal(t, "network error", err.Error())
	assert.Equal(t, StateCredentials, flow.State())
}

func TestSubmitCredentials_RejectsOverlap(t *testing.T) {
	release := make(chan struct{})
	arrived := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/admin/login", func(w http.ResponseWriter, r *http.Request) {
		close(arrived)
		<-release
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.LoginChallenge{RequiresOTP: true, AdminID: "abc123"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	flow, _ := setupFlowTest(t, server.URL)

	done := make(chan error, 1)
	go func() {
		done <- flow.SubmitCredentials(context.Background(), "rajesh", "secret")
	}()

	<-arrived
	err := flow.SubmitCredentials(context.Background(), "rajesh", "secret")
	assert.ErrorIs(t, err, ErrRequestInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StateAwaitingOTP, flow.State())
}
