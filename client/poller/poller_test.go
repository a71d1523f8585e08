package poller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajeshk/portfolio/client/api"
	"github.com/rajeshk/portfolio/client/session"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

type contactServer struct {
	mu       sync.Mutex
	contacts []models.ContactMessage
	status   int
}

func (s *contactServer) add(contact models.ContactMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append(s.contacts, contact)
}

func (s *contactServer) setStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

func (s *contactServer) handler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if s.status != 0 {
		w.WriteHeader(s.status)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Invalid or expired token",
		})
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    s.contacts,
	})
}

func setupPollerTest(t *testing.T, interval time.Duration, onUpdate func([]models.ContactMessage)) (*Poller, *contactServer, *session.Store) {
	t.Helper()

	srv := &contactServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/contacts", srv.handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	store, err := session.NewStore(filepath.Join(t.TempDir(), "session.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Load())
	require.NoError(t, store.Login("tok_xyz", &models.AdminProfile{ID: "abc123"}))

	client := api.NewClient(server.URL, nil, log)
	client.SetToken("tok_xyz")

	return New(client, store, log, interval, onUpdate), srv, store
}

func TestRun_ReportsOnlyNewMessages(t *testing.T) {
	updates := make(chan []models.ContactMessage, 4)
	poller, srv, _ := setupPollerTest(t, 10*time.Millisecond, func(batch []models.ContactMessage) {
		updates <- batch
	})

	existing := models.ContactMessage{ID: uuid.New(), Name: "Old Visitor", Message: "Already there"}
	srv.add(existing)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- poller.Run(ctx) }()

	// Give the first poll time to absorb the pre-existing inbox
	time.Sleep(30 * time.Millisecond)

	fresh := models.ContactMessage{ID: uuid.New(), Name: "New Visitor", Message: "Hello"}
	srv.add(fresh)

	select {
	case batch := <-updates:
		require.Len(t, batch, 1)
		assert.Equal(t, "New Visitor", batch[0].Name)
	case <-time.After(2 * time.Second):
		t.Fatal("no update received for the new message")
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestRun_UnauthorizedClearsSessionAndStops(t *testing.T) {
	poller, srv, store := setupPollerTest(t, 10*time.Millisecond, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- poller.Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	srv.setStatus(http.StatusUnauthorized)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrSessionExpired)
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop on 401")
	}

	assert.Empty(t, store.Token())
	assert.Nil(t, store.Admin())
}

func TestRun_StopsOnCancel(t *testing.T) {
	poller, _, _ := setupPollerTest(t, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- poller.Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop on cancel")
	}
}
