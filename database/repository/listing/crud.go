package listingRepo

import (
	"context"
	"errors"
	"time"

	"webimmo/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// ErrListingNotFound is returned when no document matches the requested ID.
var ErrListingNotFound = errors.New("listing not found")

// GetAll returns every listing in store order. Legacy single-value fields
// are folded into the list shapes here so consumers only ever see one
// record shape.
func (r *mongoListingRepo) GetAll(ctx context.Context) ([]models.Listing, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}
	for i := range listings {
		listings[i].Normalize()
	}
	return listings, nil
}

// GetByID returns a single listing by its ID.
func (r *mongoListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	var listing models.Listing
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&listing)
	if err != nil {
		return nil, err
	}
	listing.Normalize()
	return &listing, nil
}

// Create inserts a new listing and returns its ID.
func (r *mongoListingRepo) Create(ctx context.Context, listing models.Listing) (string, error) {
	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, listing)
	if err != nil {
		return "", err
	}
	return listing.ID, nil
}

// Update replaces the stored document in full. Listings are only ever
// mutated through whole-record replacement from the admin panel.
func (r *mongoListingRepo) Update(ctx context.Context, listing models.Listing) error {
	listing.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": listing.ID}, listing)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrListingNotFound
	}
	return nil
}

// Delete removes a listing by ID.
func (r *mongoListingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrListingNotFound
	}
	return nil
}
