package listing

import (
	"context"
	"encoding/json"
	"time"

	"webimmo/catalog"
	"webimmo/models"
	"webimmo/utils"

	"go.uber.org/zap"
)

const (
	catalogCacheKey = "catalog:houses"
	catalogCacheTTL = 5 * time.Minute
)

// GetAll returns the full listing set, served from the Redis cache when
// warm. Store order is preserved; it is the base iteration order for the
// filter.
func (s *DefaultListingService) GetAll(ctx context.Context) ([]models.Listing, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, catalogCacheKey).Result()
		if err == nil {
			var listings []models.Listing
			if err := json.Unmarshal([]byte(cached), &listings); err == nil {
				return listings, nil
			}
			logger.Warn("Discarding corrupt catalog cache entry", zap.Error(err))
		}
	}

	listings, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if encoded, err := json.Marshal(listings); err == nil {
			if err := s.Cache.Set(ctx, catalogCacheKey, encoded, catalogCacheTTL).Err(); err != nil {
				logger.Warn("Failed to cache catalog", zap.Error(err))
			}
		}
	}
	return listings, nil
}

// GetByID returns one listing.
func (s *DefaultListingService) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	return s.Repo.GetByID(ctx, id)
}

// Search loads the catalog and narrows it with the visitor's criteria.
// Load failures degrade to an empty result set with a logged diagnostic;
// the presentation layer never sees a raised fault from the catalog read.
func (s *DefaultListingService) Search(ctx context.Context, criteria models.SearchCriteria) []models.Listing {
	listings, err := s.GetAll(ctx)
	if err != nil {
		utils.GetLogger().Error("Catalog load failed, returning empty result set", zap.Error(err))
		return []models.Listing{}
	}
	return catalog.Filter(criteria, listings)
}

// invalidateCache drops the cached catalog after an admin write.
func (s *DefaultListingService) invalidateCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, catalogCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate catalog cache", zap.Error(err))
	}
}
