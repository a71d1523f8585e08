package poller

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rajeshk/portfolio/client/api"
	"github.com/rajeshk/portfolio/client/session"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

// ErrSessionExpired is returned when the server stops accepting the token.
// The local session is already cleared by the time the caller sees it.
var ErrSessionExpired = errors.New("session expired, run 'portfolioctl login' again")

const maxBackoffFactor = 8

// Poller watches the contact inbox and reports messages it has not seen
// before. Transport failures back the interval off instead of aborting; an
// authorization failure logs the session out and stops.
type Poller struct {
	api      *api.Client
	session  *session.Store
	log      *logrus.Logger
	interval time.Duration
	onUpdate func([]models.ContactMessage)

	seen map[uuid.UUID]struct{}
}

// New creates a poller that invokes onUpdate with each batch of new messages
func New(apiClient *api.Client, sessionStore *session.Store, log *logrus.Logger, interval time.Duration, onUpdate func([]models.ContactMessage)) *Poller {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}

	return &Poller{
		api:      apiClient,
		session:  sessionStore,
		log:      log,
		interval: interval,
		onUpdate: onUpdate,
		seen:     make(map[uuid.UUID]struct{}),
	}
}

// Run polls until the context is cancelled or the session expires. The first
// fetch happens immediately; it marks the existing inbox as seen so only
// messages arriving afterwards are reported.
func (p *Poller) Run(ctx context.Context) error {
	if err := p.poll(ctx, false); err != nil {
		return err
	}

	delay := p.interval
	timer := time.NewTimer(delay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		err := p.poll(ctx, true)
		switch {
		case errors.Is(err, ErrSessionExpired):
			return err
		case errors.Is(err, api.ErrNetwork):
			if delay < time.Duration(maxBackoffFactor)*p.interval {
				delay *= 2
			}
			p.log.WithFields(logrus.Fields{"retry_in": delay}).Debug("poll failed, backing off")
		case err != nil:
			p.log.WithError(err).Warn("poll failed")
			delay = p.interval
		default:
			delay = p.interval
		}

		timer.Reset(delay)
	}
}

func (p *Poller) poll(ctx context.Context, notify bool) error {
	contacts, err := p.api.ListContacts(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			p.log.Warn("token rejected by server, clearing session")
			if logoutErr := p.session.Logout(); logoutErr != nil {
				p.log.WithError(logoutErr).Warn("failed to clear session")
			}
			return ErrSessionExpired
		}
		return err
	}

	var fresh []models.ContactMessage
	for _, c := range contacts {
		if _, ok := p.seen[c.ID]; ok {
			continue
		}
		p.seen[c.ID] = struct{}{}
		fresh = append(fresh, c)
	}

	if notify && len(fresh) > 0 && p.onUpdate != nil {
		p.onUpdate(fresh)
	}

	return nil
}
