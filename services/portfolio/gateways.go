package portfolio

import (
	"context"

	"github.com/rajeshk/portfolio/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/rajeshk/portfolio/services/portfolio PortfolioGW

// PortfolioGW defines the portfolio gateways interface
type PortfolioGW interface {
	// NSQ Gateway
	PublishContactEvent(ctx context.Context, event *models.ContactEvent) error
}
