package listingRepo

import (
	"context"

	"webimmo/database"
	"webimmo/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ListingRepository abstracts persistence for property listings.
type ListingRepository interface {
	GetAll(ctx context.Context) ([]models.Listing, error)
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	Create(ctx context.Context, listing models.Listing) (string, error)
	Update(ctx context.Context, listing models.Listing) error
	Delete(ctx context.Context, id string) error
}

type mongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo returns a ListingRepository backed by the "houses"
// collection.
func NewMongoListingRepo() ListingRepository {
	return &mongoListingRepo{
		coll: database.Collection("houses"),
	}
}
