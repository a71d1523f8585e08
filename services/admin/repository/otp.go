package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rajeshk/portfolio/internal/pkg/constants"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

// CreateOTP stores an OTP in Redis keyed by admin ID. Expiry is enforced
// server-side through the key TTL, so a stale code simply disappears.
func (r *AdminRepo) CreateOTP(ctx context.Context, otp *models.OTP) error {
	otpJSON, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	key := fmt.Sprintf(constants.KeyAdminOTP, otp.AdminID)
	ttl := time.Duration(r.cfg.Admin.OTPExpirySecs) * time.Second

	if err := r.redisClient.Set(ctx, key, otpJSON, ttl); err != nil {
		return fmt.Errorf("failed to store OTP in Redis: %w", err)
	}

	return nil
}

// GetOTP retrieves the OTP for the given admin ID. A missing key means the
// OTP expired or was never issued.
func (r *AdminRepo) GetOTP(ctx context.Context, adminID string) (*models.OTP, error) {
	key := fmt.Sprintf(constants.KeyAdminOTP, adminID)

	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("OTP not found or expired: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}

	return &otp, nil
}

// DeleteOTP removes the OTP for the given admin ID
func (r *AdminRepo) DeleteOTP(ctx context.Context, adminID string) error {
	key := fmt.Sprintf(constants.KeyAdminOTP, adminID)

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}

	return nil
}
