package nsq

import (
	"github.com/rajeshk/portfolio/internal/pkg/constants"
	"github.com/rajeshk/portfolio/internal/pkg/logger"
	"github.com/rajeshk/portfolio/internal/pkg/models"
	nsqpkg "github.com/rajeshk/portfolio/internal/pkg/nsq"
)

// NotifierHandler consumes OTP and contact events and dispatches
// notifications. Email delivery is not wired up yet, so events are logged
// for the operator.
type NotifierHandler struct {
	otpConsumer     *nsqpkg.Consumer
	contactConsumer *nsqpkg.Consumer
}

// NewNotifierHandler creates consumers for the notification topics
func NewNotifierHandler(address, channel string) (*NotifierHandler, error) {
	h := &NotifierHandler{}

	otpConsumer, err := nsqpkg.NewConsumer(constants.TopicAdminOTP, channel, address, h.handleOTPEvent)
	if err != nil {
		return nil, err
	}

	contactConsumer, err := nsqpkg.NewConsumer(constants.TopicContactCreated, channel, address, h.handleContactEvent)
	if err != nil {
		otpConsumer.Stop()
		return nil, err
	}

	h.otpConsumer = otpConsumer
	h.contactConsumer = contactConsumer
	return h, nil
}

// handleOTPEvent processes a single OTP event
func (h *NotifierHandler) handleOTPEvent(message []byte) error {
	var event models.OTPEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		return err
	}

	logger.Info("Admin login OTP issued",
		logger.String("admin_id", event.AdminID),
		logger.String("email", event.Email))

	return nil
}

// handleContactEvent processes a single new-contact event
func (h *NotifierHandler) handleContactEvent(message []byte) error {
	var event models.ContactEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		return err
	}

	logger.Info("New contact message received",
		logger.String("contact_id", event.ContactID),
		logger.String("name", event.Name),
		logger.String("email", event.Email))

	return nil
}

// Stop gracefully stops the consumers
func (h *NotifierHandler) Stop() {
	if h.otpConsumer != nil {
		h.otpConsumer.Stop()
	}
	if h.contactConsumer != nil {
		h.contactConsumer.Stop()
	}
}
