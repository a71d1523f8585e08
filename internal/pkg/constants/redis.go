package constants

// Redis key formats
const (
	KeyAdminOTP = "admin:otp:%s" // Format: admin:otp:{admin_id}
)
