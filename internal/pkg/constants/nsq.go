package constants

// NSQ topics
const (
	TopicAdminOTP       = "portfolio.admin.otp"
	TopicContactCreated = "portfolio.contact.created"
)
