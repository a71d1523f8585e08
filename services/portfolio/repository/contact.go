package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

// CreateContact inserts a new contact message
func (r *PortfolioRepo) CreateContact(ctx context.Context, contact *models.ContactMessage) error {
	query := `
		INSERT INTO contacts (id, name, email, subject, message, replied, reply_message, created_at, updated_at)
		VALUES (:id, :name, :email, :subject, :message, :replied, :reply_message, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, contact)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	return nil
}

// ListContacts returns all contact messages, newest first
func (r *PortfolioRepo) ListContacts(ctx context.Context) ([]models.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, replied, reply_message, created_at, updated_at
		FROM contacts
		ORDER BY created_at DESC
	`

	contacts := []models.ContactMessage{}
	if err := r.db.SelectContext(ctx, &contacts, query); err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return contacts, nil
}

// MarkContactReplied toggles the replied flag
func (r *PortfolioRepo) MarkContactReplied(ctx context.Context, id uuid.UUID, replied bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE contacts SET replied = $1, updated_at = NOW() WHERE id = $2`,
		replied, id)
	if err != nil {
		return fmt.Errorf("failed to mark contact replied: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("contact not found")
	}

	return nil
}

// SetContactReply stores the reply text and marks the message replied
func (r *PortfolioRepo) SetContactReply(ctx context.Context, id uuid.UUID, replyMessage string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE contacts SET reply_message = $1, replied = true, updated_at = NOW() WHERE id = $2`,
		replyMessage, id)
	if err != nil {
		return fmt.Errorf("failed to store contact reply: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("contact not found")
	}

	return nil
}

// DeleteContact removes a contact message by ID
func (r *PortfolioRepo) DeleteContact(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("contact not found")
	}

	return nil
}
