package usecase

import (
	"github.com/rajeshk/portfolio/internal/pkg/models"
	"github.com/rajeshk/portfolio/services/admin"
)

type AdminUC struct {
	adminRepo admin.AdminRepo
	adminGW   admin.AdminGW
	cfg       *models.Config
}

// NewAdminUC creates a new admin usecase instance
func NewAdminUC(
	adminRepo admin.AdminRepo,
	adminGW admin.AdminGW,
	cfg *models.Config,
) *AdminUC {
	return &AdminUC{
		adminRepo: adminRepo,
		adminGW:   adminGW,
		cfg:       cfg,
	}
}
