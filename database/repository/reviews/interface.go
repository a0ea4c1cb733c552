package reviewsRepo

import (
	"context"

	"webimmo/database"
	"webimmo/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewSummaryRepository persists the single cached review summary. The
// collection holds exactly one document under a fixed key.
type ReviewSummaryRepository interface {
	Get(ctx context.Context) (*models.ReviewSummary, error)
	Replace(ctx context.Context, summary models.ReviewSummary) error
}

type mongoReviewsRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewsRepo returns a ReviewSummaryRepository backed by the
// "google_reviews" collection.
func NewMongoReviewsRepo() ReviewSummaryRepository {
	return &mongoReviewsRepo{
		coll: database.Collection("google_reviews"),
	}
}
