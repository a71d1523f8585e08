package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/rajeshk/portfolio/internal/pkg/database"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

// AdminRepo implements the admin repository interface backed by Postgres
// for the admin account and Redis for short-lived OTPs.
type AdminRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAdminRepo creates a new admin repository instance
func NewAdminRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AdminRepo {
	return &AdminRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
