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

func setupAdminRepoTest(t *testing.T) (*AdminRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewAdminRepo(&models.Config{}, db, nil)

	return repo, mock
}

func adminRows(account *models.Admin) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "username", "email", "full_name", "password_hash",
		"created_at", "updated_at", "last_login_at",
	}).AddRow(
		account.ID, account.Username, account.Email, account.FullName,
		account.PasswordHash, account.CreatedAt, account.UpdatedAt, account.LastLoginAt,
	)
}

func TestGetAdminByUsername(t *testing.T) {
	repo, mock := setupAdminRepoTest(t)

	account := &models.Admin{
		ID:           uuid.New(),
		Username:     "rajesh",
		Email:        "rajesh@example.com",
		FullName:     "Rajesh",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, full_name, password_hash, created_at, updated_at, last_login_at`)).
		WithArgs("rajesh").
		WillReturnRows(adminRows(account))

	got, err := repo.GetAdminByUsername(context.Background(), "rajesh")
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
	assert.Equal(t, account.Username, got.Username)
	assert.Equal(t, account.Email, got.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAdminByUsername_NotFound(t *testing.T) {
	repo, mock := setupAdminRepoTest(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, full_name, password_hash, created_at, updated_at, last_login_at`)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.GetAdminByUsername(context.Background(), "nobody")
	assert.Nil(t, got)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "admin not found")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAdminByID(t *testing.T) {
	repo, mock := setupAdminRepoTest(t)

	account := &models.Admin{
		ID:           uuid.New(),
		Username:     "rajesh",
		Email:        "rajesh@example.com",
		FullName:     "Rajesh",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, full_name, password_hash, created_at, updated_at, last_login_at`)).
		WithArgs(account.ID).
		WillReturnRows(adminRows(account))

	got, err := repo.GetAdminByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, account.Username, got.Username)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateLastLogin(t *testing.T) {
	repo, mock := setupAdminRepoTest(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE admins`)).
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateLastLogin(context.Background(), id)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
