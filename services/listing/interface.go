package listing

import (
	"context"

	listingRepo "webimmo/database/repository/listing"
	"webimmo/models"

	"github.com/go-redis/redis/v8"
)

// ListingService exposes the public catalog reads and the admin CRUD
// surface over property listings.
type ListingService interface {
	// Public catalog.
	GetAll(ctx context.Context) ([]models.Listing, error)
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	Search(ctx context.Context, criteria models.SearchCriteria) []models.Listing

	// Admin surface.
	Create(ctx context.Context, l models.Listing) (*models.Listing, error)
	Update(ctx context.Context, l models.Listing) (*models.Listing, error)
	Delete(ctx context.Context, id string) error
}

// DefaultListingService is the production ListingService.
type DefaultListingService struct {
	Repo  listingRepo.ListingRepository
	Cache *redis.Client
}
