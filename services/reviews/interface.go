package reviews

import (
	"context"
	"time"

	reviewsRepo "webimmo/database/repository/reviews"
	"webimmo/models"
)

// SyncResult is the success payload of one sync run.
type SyncResult struct {
	BusinessName  string  `json:"businessName"`
	ReviewCount   int     `json:"reviewCount"`
	AverageRating float64 `json:"averageRating"`
	Message       string  `json:"message"`
}

// ReviewService fetches review data from the Places API and maintains the
// cached summary document.
type ReviewService interface {
	// Sync runs one fetch-and-store pass for the configured business.
	Sync(ctx context.Context) (*SyncResult, error)
	// GetSummary returns the cached summary for the public site.
	GetSummary(ctx context.Context) (*models.ReviewSummary, error)
}

// DefaultReviewService is the production ReviewService.
type DefaultReviewService struct {
	Repo    reviewsRepo.ReviewSummaryRepository
	Places  PlacesClient
	APIKey  string
	PlaceID string

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

// NewReviewService wires a DefaultReviewService.
func NewReviewService(repo reviewsRepo.ReviewSummaryRepository, places PlacesClient, apiKey, placeID string) *DefaultReviewService {
	return &DefaultReviewService{
		Repo:    repo,
		Places:  places,
		APIKey:  apiKey,
		PlaceID: placeID,
		now:     time.Now,
	}
}
