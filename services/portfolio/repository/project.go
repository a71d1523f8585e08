package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

// ListProjects returns projects matching the filter plus the total count.
// Featured filtering is only applied when the filter asks for featured
// entries, so the default listing shows everything.
func (r *PortfolioRepo) ListProjects(ctx context.Context, filter *models.ProjectFilter) ([]models.Project, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.Category != "" {
		where += fmt.Sprintf(" AND category = $%d", argPos)
		args = append(args, filter.Category)
		argPos++
	}
	if filter.Featured {
		where += " AND featured = true"
	}

	countQuery := "SELECT COUNT(*) FROM projects " + where

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, title, description, category, technologies, image_url, live_url, repo_url, featured, created_at, updated_at
		FROM projects %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	projects := []models.Project{}
	if err := r.db.SelectContext(ctx, &projects, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, total, nil
}

// CreateProject inserts a new project
func (r *PortfolioRepo) CreateProject(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (
			id, title, description, category, technologies,
			image_url, live_url, repo_url, featured, created_at, updated_at
		) VALUES (:id, :title, :description, :category, :technologies,
			:image_url, :live_url, :repo_url, :featured, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, project)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// UpdateProject updates an existing project
func (r *PortfolioRepo) UpdateProject(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects SET
			title = :title,
			description = :description,
			category = :category,
			technologies = :technologies,
			image_url = :image_url,
			live_url = :live_url,
			repo_url = :repo_url,
			featured = :featured,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, project)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("project not found")
	}

	return nil
}

// DeleteProject removes a project by ID
func (r *PortfolioRepo) DeleteProject(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("project not found")
	}

	return nil
}
