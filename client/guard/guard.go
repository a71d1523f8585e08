package guard

import (
	"errors"

	"github.com/rajeshk/portfolio/client/session"
)

// Decision is the outcome of an access check
type Decision int

const (
	// Wait means the session is still being read; check again once loaded
	Wait Decision = iota
	// Redirect means there is no session and the caller must log in first
	Redirect
	// Allow means a token is present and the command may proceed
	Allow
)

func (d Decision) String() string {
	switch d {
	case Wait:
		return "wait"
	case Redirect:
		return "redirect"
	case Allow:
		return "allow"
	default:
		return "unknown"
	}
}

// ErrNotLoggedIn is returned by Require when no session exists
var ErrNotLoggedIn = errors.New("not logged in, run 'portfolioctl login' first")

// Guard gates admin commands on the session state. Every command re-checks;
// a decision is never cached across invocations.
type Guard struct {
	session *session.Store
}

// New creates a guard over the given session store
func New(sessionStore *session.Store) *Guard {
	return &Guard{session: sessionStore}
}

// Check evaluates the session without side effects. A loading session means
// wait, an absent token means redirect to login, and a present token admits.
func (g *Guard) Check() Decision {
	if g.session.Loading() {
		return Wait
	}
	if g.session.Token() == "" {
		return Redirect
	}
	return Allow
}

// Require finishes loading the session if needed, then admits or refuses.
// It is the blocking form of Check for command-line use.
func (g *Guard) Require() error {
	if g.session.Loading() {
		if err := g.session.Load(); err != nil {
			return err
		}
	}
	if g.session.Token() == "" {
		return ErrNotLoggedIn
	}
	return nil
}
