package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project entry
type Project struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Category     string    `json:"category" db:"category"`
	Technologies string    `json:"technologies" db:"technologies"` // comma separated
	ImageURL     string    `json:"image_url" db:"image_url"`
	LiveURL      string    `json:"live_url" db:"live_url"`
	RepoURL      string    `json:"repo_url" db:"repo_url"`
	Featured     bool      `json:"featured" db:"featured"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ProjectFilter narrows public project listings
type ProjectFilter struct {
	Page     int
	Limit    int
	Category string
	Featured bool
}

// ProjectPage is a paginated project listing
type ProjectPage struct {
	Projects []Project `json:"projects"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	Total    int       `json:"total"`
}
