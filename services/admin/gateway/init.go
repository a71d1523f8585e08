package gateway

import (
	"github.com/rajeshk/portfolio/internal/pkg/logger"
	nsqpkg "github.com/rajeshk/portfolio/internal/pkg/nsq"
	"github.com/rajeshk/portfolio/internal/pkg/retry"
	"github.com/rajeshk/portfolio/services/admin"
)

// AdminGW handles admin gateway operations
type AdminGW struct {
	producer *nsqpkg.Producer
	retrier  *retry.Retrier
}

// NewAdminGW creates a new gateway instance publishing over NSQ
func NewAdminGW(producer *nsqpkg.Producer, zapLogger *logger.ZapLogger) admin.AdminGW {
	return &AdminGW{
		producer: producer,
		retrier:  retry.NewWithDefaults(zapLogger),
	}
}
