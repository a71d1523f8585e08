package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rajeshk/portfolio/internal/pkg/logger"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

// SubmitContact stores a visitor contact message and publishes the
// contact-received event for the notifier.
func (u *PortfolioUC) SubmitContact(ctx context.Context, contact *models.ContactMessage) error {
	if contact.Name == "" || contact.Email == "" || contact.Message == "" {
		return fmt.Errorf("contact name, email and message are required")
	}

	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	if err := u.repo.CreateContact(ctx, contact); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	event := &models.ContactEvent{
		ContactID: contact.ID.String(),
		Name:      contact.Name,
		Email:     contact.Email,
		Subject:   contact.Subject,
		CreatedAt: contact.CreatedAt,
	}
	if err := u.gw.PublishContactEvent(ctx, event); err != nil {
		// The message is stored, notification delivery is best effort
		logger.Error("Failed to publish contact event",
			logger.String("contact_id", event.ContactID),
			logger.Err(err))
	}

	return nil
}

// ListContacts returns all contact messages, newest first
func (u *PortfolioUC) ListContacts(ctx context.Context) ([]models.ContactMessage, error) {
	contacts, err := u.repo.ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return contacts, nil
}

// MarkContactReplied toggles the replied flag on a contact message
func (u *PortfolioUC) MarkContactReplied(ctx context.Context, id uuid.UUID, replied bool) error {
	if err := u.repo.MarkContactReplied(ctx, id, replied); err != nil {
		return fmt.Errorf("failed to mark contact replied: %w", err)
	}

	return nil
}

// ReplyContact records a reply to a contact message. Actual mail delivery is
// handled by the notifier consuming the stored reply.
func (u *PortfolioUC) ReplyContact(ctx context.Context, id uuid.UUID, replyMessage string) error {
	if replyMessage == "" {
		return fmt.Errorf("reply message is required")
	}

	if err := u.repo.SetContactReply(ctx, id, replyMessage); err != nil {
		return fmt.Errorf("failed to store contact reply: %w", err)
	}

	return nil
}

// DeleteContact removes a contact message
func (u *PortfolioUC) DeleteContact(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.DeleteContact(ctx, id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	return nil
}
