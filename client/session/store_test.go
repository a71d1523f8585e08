package session

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/rajeshk/portfolio/internal/pkg/models"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.db")
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	store, err := NewStore(path, log)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store, path
}

func TestLoad_EmptyDatabase(t *testing.T) {
	store, _ := testStore(t)

	assert.True(t, store.Loading())

	err := store.Load()
	require.NoError(t, err)

	assert.False(t, store.Loading())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.Admin())
}

func TestLogin_PersistsAcrossReopen(t *testing.T) {
	store, path := testStore(t)
	require.NoError(t, store.Load())

	admin := &models.AdminProfile{ID: "abc123", Username: "rajesh", Name: "Rajesh"}
	err := store.Login("tok_xyz", admin)
	require.NoError(t, err)

	assert.Equal(t, "tok_xyz", store.Token())
	require.NoError(t, store.Close())

	reopened, err := NewStore(path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	require.NoError(t, reopened.Load())
	assert.Equal(t, "tok_xyz", reopened.Token())
	require.NotNil(t, reopened.Admin())
	assert.Equal(t, "Rajesh", reopened.Admin().Name)
	assert.Equal(t, "abc123", reopened.Admin().ID)
}

func TestLogin_SecondLoginOverwritesFirst(t *testing.T) {
	store, path := testStore(t)
	require.NoError(t, store.Load())

	require.NoError(t, store.Login("tok_old", &models.AdminProfile{ID: "abc123", Name: "Old"}))
	require.NoError(t, store.Login("tok_xyz", &models.AdminProfile{ID: "abc123", Name: "Rajesh"}))

	assert.Equal(t, "tok_xyz", store.Token())
	assert.Equal(t, "Rajesh", store.Admin().Name)
	require.NoError(t, store.Close())

	reopened, err := NewStore(path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	require.NoError(t, reopened.Load())
	assert.Equal(t, "tok_xyz", reopened.Token())
	assert.Equal(t, "Rajesh", reopened.Admin().Name)
}

func TestLogin_PersistFailureKeepsMemorySession(t *testing.T) {
	store, _ := testStore(t)
	require.NoError(t, store.Load())

	// Closing the db makes the Update fail; the session must stay usable
	require.NoError(t, store.db.Close())

	admin := &models.AdminProfile{ID: "abc123", Name: "Rajesh"}
	err := store.Login("tok_xyz", admin)
	require.NoError(t, err)

	assert.Equal(t, "tok_xyz", store.Token())
	assert.NotNil(t, store.Admin())
}

func TestLogout_WipesEverything(t *testing.T) {
	store, path := testStore(t)
	require.NoError(t, store.Load())

	require.NoError(t, store.Login("tok_xyz", &models.AdminProfile{ID: "abc123"}))
	require.NoError(t, store.Logout())

	assert.Empty(t, store.Token())
	assert.Nil(t, store.Admin())
	require.NoError(t, store.Close())

	// No bucket should survive a logout
	db, err := bbolt.Open(path, 0600, nil)
	require.NoError(t, err)
	defer db.Close()

	err = db.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bbolt.Bucket) error {
			t.Errorf("bucket %q survived logout", name)
			return nil
		})
	})
	require.NoError(t, err)
}

func TestLogout_ThenReopenIsLoggedOut(t *testing.T) {
	store, path := testStore(t)
	require.NoError(t, store.Load())

	require.NoError(t, store.Login("tok_xyz", &models.AdminProfile{ID: "abc123"}))
	require.NoError(t, store.Logout())
	require.NoError(t, store.Close())

	reopened, err := NewStore(path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	require.NoError(t, reopened.Load())
	assert.Empty(t, reopened.Token())
	assert.Nil(t, reopened.Admin())
}
