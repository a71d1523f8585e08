package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

// GetAdminByUsername retrieves an admin account by username
func (r *AdminRepo) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := `
		SELECT id, username, email, full_name, password_hash, created_at, updated_at, last_login_at
		FROM admins
		WHERE username = $1
	`

	var account models.Admin
	err := r.db.GetContext(ctx, &account, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("admin not found")
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return &account, nil
}

// GetAdminByID retrieves an admin account by ID
func (r *AdminRepo) GetAdminByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	query := `
		SELECT id, username, email, full_name, password_hash, created_at, updated_at, last_login_at
		FROM admins
		WHERE id = $1
	`

	var account models.Admin
	err := r.db.GetContext(ctx, &account, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("admin not found")
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return &account, nil
}

// UpdateLastLogin records the time of a successful login
func (r *AdminRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE admins
		SET last_login_at = $1, updated_at = $1
		WHERE id = $2
	`

	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	return nil
}
