package usecase

import (
	"github.com/rajeshk/portfolio/internal/pkg/models"
	"github.com/rajeshk/portfolio/services/portfolio"
)

const (
	defaultPageLimit = 12
	maxPageLimit     = 50
)

type PortfolioUC struct {
	repo portfolio.PortfolioRepo
	gw   portfolio.PortfolioGW
	cfg  *models.Config
}

// NewPortfolioUC creates a new portfolio usecase instance
func NewPortfolioUC(
	repo portfolio.PortfolioRepo,
	gw portfolio.PortfolioGW,
	cfg *models.Config,
) *PortfolioUC {
	return &PortfolioUC{
		repo: repo,
		gw:   gw,
		cfg:  cfg,
	}
}

// normalizePaging clamps page and limit to sane bounds
func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
