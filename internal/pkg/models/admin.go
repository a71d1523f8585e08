package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents the single administrator identity
type Admin struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	FullName     string    `json:"name" db:"full_name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
	LastLoginAt  time.Time `json:"last_login_at" db:"last_login_at"`
}

// AdminProfile is the public view of an Admin handed to clients on login.
// It never carries credential material.
type AdminProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// Profile converts an Admin to its client-facing profile
func (a *Admin) Profile() *AdminProfile {
	return &AdminProfile{
		ID:       a.ID.String(),
		Username: a.Username,
		Email:    a.Email,
		Name:     a.FullName,
	}
}

// OTP represents a one-time password issued after credential verification
type OTP struct {
	AdminID   string    `json:"admin_id"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminLoginRequest is the body of POST /admin/login
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// VerifyOTPRequest is the body of POST /admin/verify-otp
type VerifyOTPRequest struct {
	AdminID string `json:"adminId" validate:"required"`
	OTP     string `json:"otp" validate:"required"`
}

// LoginChallenge is the success response of POST /admin/login; it tells the
// client to proceed to the OTP step for the returned admin ID.
type LoginChallenge struct {
	RequiresOTP bool   `json:"requiresOTP"`
	AdminID     string `json:"adminId"`
}

// AuthResponse is the success response of POST /admin/verify-otp
type AuthResponse struct {
	Token string        `json:"token"`
	Admin *AdminProfile `json:"admin"`
}
