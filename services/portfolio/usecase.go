package portfolio

import (
	"context"

	"github.com/google/uuid"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rajeshk/portfolio/services/portfolio PortfolioUC

// PortfolioUC represents the portfolio content usecase interface
type PortfolioUC interface {
	// projects
	ListProjects(ctx context.Context, filter *models.ProjectFilter) (*models.ProjectPage, error)
	CreateProject(ctx context.Context, project *models.Project) error
	UpdateProject(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, id uuid.UUID) error

	// gallery
	ListGallery(ctx context.Context, filter *models.GalleryFilter) (*models.GalleryPage, error)
	CreateGalleryItem(ctx context.Context, item *models.GalleryItem) error
	UpdateGalleryItem(ctx context.Context, item *models.GalleryItem) error
	DeleteGalleryItem(ctx context.Context, id uuid.UUID) error

	// testimonials
	ListTestimonials(ctx context.Context, includeUnapproved bool) ([]models.Testimonial, error)
	SubmitTestimonial(ctx context.Context, testimonial *models.Testimonial) error
	UpdateTestimonialStatus(ctx context.Context, id uuid.UUID, status string) error
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error

	// contacts
	SubmitContact(ctx context.Context, contact *models.ContactMessage) error
	ListContacts(ctx context.Context) ([]models.ContactMessage, error)
	MarkContactReplied(ctx context.Context, id uuid.UUID, replied bool) error
	ReplyContact(ctx context.Context, id uuid.UUID, replyMessage string) error
	DeleteContact(ctx context.Context, id uuid.UUID) error
}
