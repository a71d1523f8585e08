package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

// ListGallery returns a page of gallery items matching the filter
func (u *PortfolioUC) ListGallery(ctx context.Context, filter *models.GalleryFilter) (*models.GalleryPage, error) {
	filter.Page, filter.Limit = normalizePaging(filter.Page, filter.Limit)

	items, total, err := u.repo.ListGallery(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery: %w", err)
	}

	return &models.GalleryPage{
		Items: items,
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
	}, nil
}

// CreateGalleryItem stores a new gallery item
func (u *PortfolioUC) CreateGalleryItem(ctx context.Context, item *models.GalleryItem) error {
	if item.ImageURL == "" {
		return fmt.Errorf("gallery image URL is required")
	}

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := u.repo.CreateGalleryItem(ctx, item); err != nil {
		return fmt.Errorf("failed to create gallery item: %w", err)
	}

	return nil
}

// UpdateGalleryItem updates an existing gallery item
func (u *PortfolioUC) UpdateGalleryItem(ctx context.Context, item *models.GalleryItem) error {
	if item.ID == uuid.Nil {
		return fmt.Errorf("gallery item id is required")
	}

	item.UpdatedAt = time.Now()

	if err := u.repo.UpdateGalleryItem(ctx, item); err != nil {
		return fmt.Errorf("failed to update gallery item: %w", err)
	}

	return nil
}

// DeleteGalleryItem removes a gallery item
func (u *PortfolioUC) DeleteGalleryItem(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.DeleteGalleryItem(ctx, id); err != nil {
		return fmt.Errorf("failed to delete gallery item: %w", err)
	}

	return nil
}
