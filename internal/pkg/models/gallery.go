package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryItem represents a single gallery image entry
type GalleryItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// GalleryFilter narrows public gallery listings
type GalleryFilter struct {
	Page     int
	Limit    int
	Category string
}

// GalleryPage is a paginated gallery listing
type GalleryPage struct {
	Items []GalleryItem `json:"items"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Total int           `json:"total"`
}
