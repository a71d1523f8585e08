package admin

import (
	"context"

	"github.com/rajeshk/portfolio/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/rajeshk/portfolio/services/admin AdminGW

// AdminGW defines the admin gateways interface
type AdminGW interface {
	// NSQ Gateway
	PublishOTPEvent(ctx context.Context, event *models.OTPEvent) error
}
