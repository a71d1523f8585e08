package session

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.etcd.io/bbolt"

	"github.com/rajeshk/portfolio/internal/pkg/models"
)

const (
	bucketSession = "session"
	keyAdminToken = "adminToken"
	keyAdminData  = "adminData"
)

// Store holds the admin session in memory and mirrors it to a local BBolt
// database so a login survives process restarts. The loading flag stays set
// until the first read from disk completes; route guarding waits on it.
type Store struct {
	mu      sync.RWMutex
	db      *bbolt.DB
	log     *logrus.Logger
	loading bool
	token   string
	admin   *models.AdminProfile
}

// NewStore opens the session database at the given path. Call Load before
// consulting the session state.
func NewStore(path string, log *logrus.Logger) (*Store, error) {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}

	return &Store{
		db:      db,
		log:     log,
		loading: true,
	}, nil
}

// Load reads the persisted session from disk. The loading flag clears once
// the read finishes, whether or not a session was found.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketSession))
		if b == nil {
			return nil
		}

		if data := b.Get([]byte(keyAdminToken)); data != nil {
			s.token = string(data)
		}
		if data := b.Get([]byte(keyAdminData)); data != nil {
			var admin models.AdminProfile
			if err := json.Unmarshal(data, &admin); err != nil {
				return fmt.Errorf("decoding stored admin profile: %w", err)
			}
			s.admin = &admin
		}
		return nil
	})
	if err != nil {
		s.token = ""
		s.admin = nil
		return fmt.Errorf("loading session: %w", err)
	}

	return nil
}

// Loading reports whether the first read from disk is still pending
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Token returns the stored auth token, empty when logged out
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Admin returns the stored admin profile, nil when logged out
func (s *Store) Admin() *models.AdminProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin
}

// Login records the authenticated session and persists the token and admin
// profile together. A persistence failure keeps the in-memory session so the
// current run stays usable; the session just won't survive a restart.
func (s *Store) Login(token string, admin *models.AdminProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.admin = admin
	s.loading = false

	err := s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucketSession))
		if err != nil {
			return err
		}

		data, err := json.Marshal(admin)
		if err != nil {
			return err
		}

		if err := b.Put([]byte(keyAdminToken), []byte(token)); err != nil {
			return err
		}
		return b.Put([]byte(keyAdminData), data)
	})
	if err != nil {
		s.log.WithError(err).Warn("session not persisted, login valid for this run only")
	}

	return nil
}

// Logout clears the in-memory session and wipes the entire database, not
// just the session keys. Any future local state goes with it.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.admin = nil

	err := s.db.Update(func(tx *bbolt.Tx) error {
		var names [][]byte
		if err := tx.ForEach(func(name []byte, _ *bbolt.Bucket) error {
			names = append(names, name)
			return nil
		}); err != nil {
			return err
		}
		for _, name := range names {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clearing session db: %w", err)
	}

	return nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
