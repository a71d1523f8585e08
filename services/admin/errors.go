package admin

import "errors"

// Sentinel errors for the auth flow. The error text is the wire message the
// client surfaces verbatim, so it is capitalized and user-facing.
var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrOTPExpired         = errors.New("OTP expired")
)
