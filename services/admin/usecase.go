package admin

import (
	"context"

	"github.com/rajeshk/portfolio/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rajeshk/portfolio/services/admin AdminUC

// AdminUC represents the admin auth usecase interface
type AdminUC interface {
	// Login verifies the admin credentials and issues an OTP challenge
	Login(ctx context.Context, req *models.AdminLoginRequest) (*models.LoginChallenge, error)

	// VerifyOTP checks the submitted OTP and issues a JWT on success
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthResponse, error)
}
