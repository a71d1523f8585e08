package gateway

import (
	"context"

	"github.com/rajeshk/portfolio/internal/pkg/constants"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

// PublishContactEvent publishes a contact-received event to NSQ
func (g *PortfolioGW) PublishContactEvent(ctx context.Context, event *models.ContactEvent) error {
	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(constants.TopicContactCreated, event)
	})
}
