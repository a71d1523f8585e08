package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

// ListTestimonials returns testimonials; the public listing only ever sees
// approved entries.
func (u *PortfolioUC) ListTestimonials(ctx context.Context, includeUnapproved bool) ([]models.Testimonial, error) {
	status := models.TestimonialApproved
	if includeUnapproved {
		status = ""
	}

	testimonials, err := u.repo.ListTestimonials(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}

	return testimonials, nil
}

// SubmitTestimonial stores a visitor testimonial as pending
func (u *PortfolioUC) SubmitTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	if testimonial.Name == "" || testimonial.Message == "" {
		return fmt.Errorf("testimonial name and message are required")
	}
	if testimonial.Rating < 1 || testimonial.Rating > 5 {
		return fmt.Errorf("testimonial rating must be between 1 and 5")
	}

	if testimonial.ID == uuid.Nil {
		testimonial.ID = uuid.New()
	}
	testimonial.Status = models.TestimonialPending
	now := time.Now()
	testimonial.CreatedAt = now
	testimonial.UpdatedAt = now

	if err := u.repo.CreateTestimonial(ctx, testimonial); err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}

	return nil
}

// UpdateTestimonialStatus moves a testimonial between pending/approved/rejected
func (u *PortfolioUC) UpdateTestimonialStatus(ctx context.Context, id uuid.UUID, status string) error {
	switch status {
	case models.TestimonialPending, models.TestimonialApproved, models.TestimonialRejected:
	default:
		return fmt.Errorf("invalid testimonial status: %s", status)
	}

	if err := u.repo.UpdateTestimonialStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update testimonial status: %w", err)
	}

	return nil
}

// DeleteTestimonial removes a testimonial
func (u *PortfolioUC) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.DeleteTestimonial(ctx, id); err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}

	return nil
}
