package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/rajeshk/portfolio/internal/pkg/jwt"
	"github.com/rajeshk/portfolio/internal/pkg/logger"
	"github.com/rajeshk/portfolio/internal/pkg/models"
	"github.com/rajeshk/portfolio/internal/utils"
	"github.com/rajeshk/portfolio/services/admin"
)

// Login verifies the admin credentials and, on success, stores a short-lived
// OTP and publishes a notification event. The OTP code itself never leaves
// the service over the event bus.
func (u *AdminUC) Login(ctx context.Context, req *models.AdminLoginRequest) (*models.LoginChallenge, error) {
	account, err := u.adminRepo.GetAdminByUsername(ctx, req.Username)
	if err != nil {
		logger.Warn("Login attempt for unknown username",
			logger.String("username", req.Username))
		return nil, admin.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login attempt with wrong password",
			logger.String("username", req.Username))
		return nil, admin.ErrInvalidCredentials
	}

	code, err := utils.GenerateOTP(u.cfg.Admin.OTPLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP: %w", err)
	}

	otp := &models.OTP{
		AdminID:   account.ID.String(),
		Code:      code,
		CreatedAt: time.Now(),
	}

	if err := u.adminRepo.CreateOTP(ctx, otp); err != nil {
		return nil, fmt.Errorf("failed to create OTP: %w", err)
	}

	// In a real deployment the notifier consuming this event would deliver
	// the code by email. For now the code is logged on the server side only.
	logger.Info("Generated OTP",
		logger.String("admin_id", otp.AdminID),
		logger.String("otp_code", code))

	event := &models.OTPEvent{
		AdminID:  account.ID.String(),
		Email:    account.Email,
		IssuedAt: otp.CreatedAt,
	}
	if err := u.adminGW.PublishOTPEvent(ctx, event); err != nil {
		// The OTP is already stored, login can still proceed
		logger.Error("Failed to publish OTP event", logger.Err(err))
	}

	return &models.LoginChallenge{
		RequiresOTP: true,
		AdminID:     account.ID.String(),
	}, nil
}

// VerifyOTP checks the submitted code against the stored OTP and issues a
// JWT on success. The stored OTP is consumed either way once matched.
func (u *AdminUC) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthResponse, error) {
	otp, err := u.adminRepo.GetOTP(ctx, req.AdminID)
	if err != nil {
		return nil, admin.ErrOTPExpired
	}

	if otp.Code != req.OTP {
		return nil, admin.ErrOTPExpired
	}

	if err := u.adminRepo.DeleteOTP(ctx, req.AdminID); err != nil {
		logger.Warn("Failed to delete consumed OTP",
			logger.String("admin_id", req.AdminID),
			logger.Err(err))
	}

	adminID, err := uuid.Parse(req.AdminID)
	if err != nil {
		return nil, admin.ErrOTPExpired
	}

	account, err := u.adminRepo.GetAdminByID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	token, _, err := jwtpkg.GenerateToken(account.ID, account.Username, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := u.adminRepo.UpdateLastLogin(ctx, account.ID); err != nil {
		logger.Warn("Failed to update last login",
			logger.String("admin_id", account.ID.String()),
			logger.Err(err))
	}

	return &models.AuthResponse{
		Token: token,
		Admin: account.Profile(),
	}, nil
}
