package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

// ListTestimonials returns testimonials, optionally filtered by status.
// An empty status returns everything for the admin view.
func (r *PortfolioRepo) ListTestimonials(ctx context.Context, status string) ([]models.Testimonial, error) {
	query := `
		SELECT id, name, email, role, message, rating, photo_url, status, created_at, updated_at
		FROM testimonials
	`
	args := []interface{}{}

	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	testimonials := []models.Testimonial{}
	if err := r.db.SelectContext(ctx, &testimonials, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}

	return testimonials, nil
}

// CreateTestimonial inserts a new testimonial
func (r *PortfolioRepo) CreateTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	query := `
		INSERT INTO testimonials (id, name, email, role, message, rating, photo_url, status, created_at, updated_at)
		VALUES (:id, :name, :email, :role, :message, :rating, :photo_url, :status, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, testimonial)
	if err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}

	return nil
}

// UpdateTestimonialStatus moves a testimonial to the given status
func (r *PortfolioRepo) UpdateTestimonialStatus(ctx context.Context, id uuid.UUID, status string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE testimonials SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("failed to update testimonial status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("testimonial not found")
	}

	return nil
}

// DeleteTestimonial removes a testimonial by ID
func (r *PortfolioRepo) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("testimonial not found")
	}

	return nil
}
