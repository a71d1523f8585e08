package admin

import (
	"context"

	"github.com/google/uuid"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rajeshk/portfolio/services/admin AdminRepo

// AdminRepo represents the admin repository interface
type AdminRepo interface {
	GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
	GetAdminByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error

	// handle OTP
	CreateOTP(ctx context.Context, otp *models.OTP) error
	GetOTP(ctx context.Context, adminID string) (*models.OTP, error)
	DeleteOTP(ctx context.Context, adminID string) error
}
