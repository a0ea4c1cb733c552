package reviews

import (
	"context"
	"fmt"

	"webimmo/models"
	"webimmo/utils"

	"go.uber.org/zap"
)

// Sync fetches current rating and review data for the configured business
// and overwrites the cached summary document in one write. Each run either
// fully succeeds or fully fails; there is no partial write.
func (s *DefaultReviewService) Sync(ctx context.Context) (*SyncResult, error) {
	logger := utils.GetLogger()

	if s.APIKey == "" {
		return nil, &ConfigError{Field: "GOOGLE_API_KEY"}
	}
	if s.PlaceID == "" {
		return nil, &ConfigError{Field: "GOOGLE_PLACE_ID"}
	}

	logger.Info("Fetching place details from Google Places API",
		zap.String("placeId", s.PlaceID))

	details, err := s.Places.FetchPlaceDetails(ctx, s.APIKey, s.PlaceID)
	if err != nil {
		return nil, fmt.Errorf("reviews: fetch failed: %w", err)
	}

	if details.Status != statusOK {
		return nil, &UpstreamError{Status: details.Status, Message: details.ErrorMessage}
	}
	if details.Result == nil {
		return nil, &NotFoundError{PlaceID: s.PlaceID}
	}

	place := details.Result

	// Upstream omits fields it has no data for; default them so the stored
	// document always carries the full shape.
	summary := models.ReviewSummary{
		Reviews:       place.Reviews,
		AverageRating: place.Rating,
		ReviewCount:   place.UserRatingsTotal,
		BusinessName:  place.Name,
		BusinessTypes: place.Types,
		LastUpdated:   s.now(),
	}
	if summary.Reviews == nil {
		summary.Reviews = []models.Review{}
	}
	if summary.BusinessTypes == nil {
		summary.BusinessTypes = []string{}
	}

	if err := s.Repo.Replace(ctx, summary); err != nil {
		return nil, fmt.Errorf("reviews: failed to store summary: %w", err)
	}

	result := &SyncResult{
		BusinessName:  summary.BusinessName,
		ReviewCount:   summary.ReviewCount,
		AverageRating: summary.AverageRating,
		Message: fmt.Sprintf("Fetched and stored %d reviews for %s (average %.1f)",
			summary.ReviewCount, summary.BusinessName, summary.AverageRating),
	}
	logger.Info("Review sync completed",
		zap.String("businessName", result.BusinessName),
		zap.Int("reviewCount", result.ReviewCount),
		zap.Float64("averageRating", result.AverageRating))
	return result, nil
}

// GetSummary returns the cached summary document.
func (s *DefaultReviewService) GetSummary(ctx context.Context) (*models.ReviewSummary, error) {
	return s.Repo.Get(ctx)
}
