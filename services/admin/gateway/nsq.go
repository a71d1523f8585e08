package gateway

import (
	"context"

	"github.com/rajeshk/portfolio/internal/pkg/constants"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

// PublishOTPEvent publishes an OTP issued event to NSQ. Publishing is
// retried with backoff since the notifier delivery matters to the login UX.
func (g *AdminGW) PublishOTPEvent(ctx context.Context, event *models.OTPEvent) error {
	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(constants.TopicAdminOTP, event)
	})
}
