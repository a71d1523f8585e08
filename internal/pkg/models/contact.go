package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage represents a message submitted through the public contact form
type ContactMessage struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Subject      string    `json:"subject" db:"subject"`
	Message      string    `json:"message" db:"message"`
	Replied      bool      `json:"replied" db:"replied"`
	ReplyMessage string    `json:"reply_message" db:"reply_message"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ContactReplyRequest is the body of POST /contacts/:id/reply
type ContactReplyRequest struct {
	ReplyMessage string `json:"replyMessage" validate:"required"`
}

// ContactEvent is published when a visitor submits a new contact message
type ContactEvent struct {
	ContactID string    `json:"contact_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

// OTPEvent is published when an OTP is issued for an admin login attempt.
// The email dispatch worker consumes it; the code itself never leaves the
// backend through this event.
type OTPEvent struct {
	AdminID  string    `json:"admin_id"`
	Email    string    `json:"email"`
	IssuedAt time.Time `json:"issued_at"`
}
