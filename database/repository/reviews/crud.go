package reviewsRepo

import (
	"context"
	"errors"

	"webimmo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// summaryDocID is the fixed key of the one-and-only summary document.
const summaryDocID = "summary"

// ErrSummaryNotFound is returned before the first successful sync run.
var ErrSummaryNotFound = errors.New("review summary not found")

// ErrStaleWrite is returned when a sync run tries to store a summary older
// than the one already cached. The timer and the on-demand trigger can run
// concurrently; this guard keeps an out-of-order completion from rolling
// the cache backwards.
var ErrStaleWrite = errors.New("review summary write is older than stored summary")

type summaryDoc struct {
	ID                   string `bson:"_id"`
	models.ReviewSummary `bson:",inline"`
}

// Get returns the cached summary.
func (r *mongoReviewsRepo) Get(ctx context.Context) (*models.ReviewSummary, error) {
	var doc summaryDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": summaryDocID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSummaryNotFound
		}
		return nil, err
	}
	return &doc.ReviewSummary, nil
}

// staleWrite reports whether storing incoming would roll the cache back
// behind the summary already held.
func staleWrite(current *models.ReviewSummary, incoming models.ReviewSummary) bool {
	return current != nil && current.LastUpdated.After(incoming.LastUpdated)
}

// Replace overwrites the summary document in one write, creating it on the
// first run. A summary whose LastUpdated is behind the stored one is
// rejected with ErrStaleWrite.
func (r *mongoReviewsRepo) Replace(ctx context.Context, summary models.ReviewSummary) error {
	current, err := r.Get(ctx)
	if err != nil && !errors.Is(err, ErrSummaryNotFound) {
		return err
	}
	if staleWrite(current, summary) {
		return ErrStaleWrite
	}

	doc := summaryDoc{ID: summaryDocID, ReviewSummary: summary}
	opts := options.Replace().SetUpsert(true)
	_, err = r.coll.ReplaceOne(ctx, bson.M{"_id": summaryDocID}, doc, opts)
	return err
}
