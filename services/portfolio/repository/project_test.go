package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajeshk/portfolio/internal/pkg/models"
)

func setupRepoTest(t *testing.T) (*PortfolioRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewPortfolioRepo(&models.Config{}, db)

	return repo, mock
}

func TestListProjects(t *testing.T) {
	repo, mock := setupRepoTest(t)

	now := time.Now()
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM projects`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, description, category, technologies, image_url, live_url, repo_url, featured, created_at, updated_at`)).
		WithArgs(12, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "description", "category", "technologies",
			"image_url", "live_url", "repo_url", "featured", "created_at", "updated_at",
		}).AddRow(id, "Portfolio Site", "desc", "web", "go,react", "", "", "", true, now, now))

	projects, total, err := repo.ListProjects(context.Background(), &models.ProjectFilter{Page: 1, Limit: 12})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, projects, 1)
	assert.Equal(t, "Portfolio Site", projects[0].Title)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListProjects_CategoryFilter(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM projects`)).
		WithArgs("web").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(regexp.QuoteMeta(`FROM projects WHERE 1=1 AND category = $1`)).
		WithArgs("web", 12, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	projects, total, err := repo.ListProjects(context.Background(), &models.ProjectFilter{
		Page: 1, Limit: 12, Category: "web",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, projects)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProject(t *testing.T) {
	repo, mock := setupRepoTest(t)

	now := time.Now()
	project := &models.Project{
		ID:        uuid.New(),
		Title:     "Portfolio Site",
		Category:  "web",
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO projects`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateProject(context.Background(), project)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProject_NotFound(t *testing.T) {
	repo, mock := setupRepoTest(t)

	project := &models.Project{
		ID:    uuid.New(),
		Title: "Missing",
	}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE projects SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProject(context.Background(), project)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "project not found")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProject(t *testing.T) {
	repo, mock := setupRepoTest(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM projects WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteProject(context.Background(), id)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
