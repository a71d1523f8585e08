package gateway

import (
	"github.com/rajeshk/portfolio/internal/pkg/logger"
	nsqpkg "github.com/rajeshk/portfolio/internal/pkg/nsq"
	"github.com/rajeshk/portfolio/internal/pkg/retry"
	"github.com/rajeshk/portfolio/services/portfolio"
)

// PortfolioGW handles portfolio gateway operations
type PortfolioGW struct {
	producer *nsqpkg.Producer
	retrier  *retry.Retrier
}

// NewPortfolioGW creates a new gateway instance publishing over NSQ
func NewPortfolioGW(producer *nsqpkg.Producer, zapLogger *logger.ZapLogger) portfolio.PortfolioGW {
	return &PortfolioGW{
		producer: producer,
		retrier:  retry.NewWithDefaults(zapLogger),
	}
}
