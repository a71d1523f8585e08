package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

// ListProjects returns a page of projects matching the filter
func (u *PortfolioUC) ListProjects(ctx context.Context, filter *models.ProjectFilter) (*models.ProjectPage, error) {
	filter.Page, filter.Limit = normalizePaging(filter.Page, filter.Limit)

	projects, total, err := u.repo.ListProjects(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return &models.ProjectPage{
		Projects: projects,
		Page:     filter.Page,
		Limit:    filter.Limit,
		Total:    total,
	}, nil
}

// CreateProject stores a new project
func (u *PortfolioUC) CreateProject(ctx context.Context, project *models.Project) error {
	if project.Title == "" {
		return fmt.Errorf("project title is required")
	}

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := u.repo.CreateProject(ctx, project); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// UpdateProject updates an existing project
func (u *PortfolioUC) UpdateProject(ctx context.Context, project *models.Project) error {
	if project.ID == uuid.Nil {
		return fmt.Errorf("project id is required")
	}
	if project.Title == "" {
		return fmt.Errorf("project title is required")
	}

	project.UpdatedAt = time.Now()

	if err := u.repo.UpdateProject(ctx, project); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	return nil
}

// DeleteProject removes a project
func (u *PortfolioUC) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
