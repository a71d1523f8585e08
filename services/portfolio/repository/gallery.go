package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

// ListGallery returns gallery items matching the filter plus the total count
func (r *PortfolioRepo) ListGallery(ctx context.Context, filter *models.GalleryFilter) ([]models.GalleryItem, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.Category != "" {
		where += fmt.Sprintf(" AND category = $%d", argPos)
		args = append(args, filter.Category)
		argPos++
	}

	countQuery := "SELECT COUNT(*) FROM gallery_items " + where

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count gallery items: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, title, description, category, image_url, created_at, updated_at
		FROM gallery_items %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	items := []models.GalleryItem{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list gallery items: %w", err)
	}

	return items, total, nil
}

// CreateGalleryItem inserts a new gallery item
func (r *PortfolioRepo) CreateGalleryItem(ctx context.Context, item *models.GalleryItem) error {
	query := `
		INSERT INTO gallery_items (id, title, description, category, image_url, created_at, updated_at)
		VALUES (:id, :title, :description, :category, :image_url, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("failed to create gallery item: %w", err)
	}

	return nil
}

// UpdateGalleryItem updates an existing gallery item
func (r *PortfolioRepo) UpdateGalleryItem(ctx context.Context, item *models.GalleryItem) error {
	query := `
		UPDATE gallery_items SET
			title = :title,
			description = :description,
			category = :category,
			image_url = :image_url,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("failed to update gallery item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("gallery item not found")
	}

	return nil
}

// DeleteGalleryItem removes a gallery item by ID
func (r *PortfolioRepo) DeleteGalleryItem(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM gallery_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("gallery item not found")
	}

	return nil
}
