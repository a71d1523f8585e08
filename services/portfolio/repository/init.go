package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

// PortfolioRepo implements the portfolio content repository over Postgres
type PortfolioRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPortfolioRepo creates a new portfolio repository instance
func NewPortfolioRepo(cfg *models.Config, db *sqlx.DB) *PortfolioRepo {
	return &PortfolioRepo{
		cfg: cfg,
		db:  db,
	}
}
