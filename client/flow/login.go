package flow

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/rajeshk/portfolio/client/api"
	"github.com/rajeshk/portfolio/client/session"
)

// State is the position of the login flow
type State int

const (
	// StateCredentials is the initial state, waiting for username and password
	StateCredentials State = iota
	// StateAwaitingOTP means credentials were accepted and an OTP is pending
	StateAwaitingOTP
	// StateCompleted means the session is established
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateCredentials:
		return "credentials"
	case StateAwaitingOTP:
		return "awaiting_otp"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

var (
	// ErrRequestInFlight is returned when a submit overlaps a pending request
	ErrRequestInFlight = errors.New("another request is already in progress")
	// ErrNoPendingLogin is returned when an OTP is submitted without a
	// preceding accepted credential step
	ErrNoPendingLogin = errors.New("no pending login to verify")
	// ErrUnexpectedChallenge is returned when the server accepts credentials
	// but does not issue an OTP challenge
	ErrUnexpectedChallenge = errors.New("login failed, please try again")
)

// LoginFlow drives the two-step admin login. Exactly one request may be in
// flight at a time; overlapping submits fail fast with ErrRequestInFlight.
type LoginFlow struct {
	mu      sync.Mutex
	api     *api.Client
	session *session.Store
	log     *logrus.Logger

	state          State
	username       string
	password       string
	pendingAdminID string
	inFlight       bool
}

// NewLoginFlow creates a login flow bound to the API client and session store
func NewLoginFlow(apiClient *api.Client, sessionStore *session.Store, log *logrus.Logger) *LoginFlow {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}

	return &LoginFlow{
		api:     apiClient,
		session: sessionStore,
		log:     log,
		state:   StateCredentials,
	}
}

// State returns the current flow state
func (f *LoginFlow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Username returns the last submitted username, kept across Back
func (f *LoginFlow) Username() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.username
}

// PendingAdminID returns the admin ID awaiting OTP verification
func (f *LoginFlow) PendingAdminID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pendingAdminID
}

func (f *LoginFlow) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inFlight {
		return ErrRequestInFlight
	}
	f.inFlight = true
	return nil
}

func (f *LoginFlow) end() {
	f.mu.Lock()
	f.inFlight = false
	f.mu.Unlock()
}

// SubmitCredentials posts the username and password. On success the flow
// advances to StateAwaitingOTP with the server's admin ID recorded; on any
// failure it stays in StateCredentials and the error message is the server's
// own wording, or the generic network error.
func (f *LoginFlow) SubmitCredentials(ctx context.Context, username, password string) error {
	if err := f.begin(); err != nil {
		return err
	}
	defer f.end()

	f.mu.Lock()
	f.username = username
	f.password = password
	f.mu.Unlock()

	challenge, err := f.api.Login(ctx, username, password)
	if err != nil {
		f.log.WithError(err).Debug("credential step failed")
		return err
	}
	if !challenge.RequiresOTP || challenge.AdminID == "" {
		// A success response that skips the OTP step is outside the
		// handshake contract; treat it as a failed attempt.
		return ErrUnexpectedChallenge
	}

	f.mu.Lock()
	f.pendingAdminID = challenge.AdminID
	f.state = StateAwaitingOTP
	f.mu.Unlock()

	f.log.WithFields(logrus.Fields{"admin_id": challenge.AdminID}).Debug("otp challenge issued")
	return nil
}

// SubmitOTP verifies the OTP for the pending admin ID. Verification never
// runs without a pending ID from an accepted credential step. On success the
// session is stored and the flow completes; on failure it stays in
// StateAwaitingOTP so the code can be retried or re-requested via Back.
func (f *LoginFlow) SubmitOTP(ctx context.Context, otp string) error {
	if err := f.begin(); err != nil {
		return err
	}
	defer f.end()

	f.mu.Lock()
	if f.state != StateAwaitingOTP || f.pendingAdminID == "" {
		f.mu.Unlock()
		return ErrNoPendingLogin
	}
	adminID := f.pendingAdminID
	f.mu.Unlock()

	auth, err := f.api.VerifyOTP(ctx, adminID, otp)
	if err != nil {
		f.log.WithError(err).Debug("otp step failed")
		return err
	}

	if err := f.session.Login(auth.Token, auth.Admin); err != nil {
		return err
	}
	f.api.SetToken(auth.Token)

	f.mu.Lock()
	f.state = StateCompleted
	f.pendingAdminID = ""
	f.password = ""
	f.mu.Unlock()

	return nil
}

// Back returns from the OTP step to the credential step. The typed username
// and password are kept; the pending admin ID is dropped, so a fresh
// credential submission is required before another OTP attempt.
func (f *LoginFlow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.inFlight {
		return ErrRequestInFlight
	}
	if f.state != StateAwaitingOTP {
		return nil
	}

	f.pendingAdminID = ""
	f.state = StateCredentials
	return nil
}

// Close abandons the flow entirely, dropping credentials and pending state
func (f *LoginFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.username = ""
	f.password = ""
	f.pendingAdminID = ""
	f.state = StateCredentials
}
