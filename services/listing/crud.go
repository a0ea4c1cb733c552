package listing

import (
	"context"
	"fmt"

	"webimmo/models"
	"webimmo/utils"

	"go.uber.org/zap"
)

// validate enforces the record invariants the store itself does not: a
// title, at least one type tag from the fixed vocabulary, a known
// condition, and principal-image membership.
func validate(l models.Listing) error {
	if l.Title == "" {
		return fmt.Errorf("listing title is required")
	}
	if len(l.Types) == 0 {
		return fmt.Errorf("listing must carry at least one property type")
	}
	for _, typ := range l.Types {
		if !isKnownType(typ) {
			return fmt.Errorf("unknown property type %q", typ)
		}
	}
	if !isKnownCondition(l.Condition) {
		return fmt.Errorf("unknown condition %q", l.Condition)
	}
	if !l.HasPrincipalImage() {
		return fmt.Errorf("principal image %q is not in the images list", l.PrincipalImage)
	}
	return nil
}

func isKnownType(typ string) bool {
	for _, t := range models.PropertyTypes {
		if t == typ {
			return true
		}
	}
	return false
}

func isKnownCondition(c models.ListingCondition) bool {
	for _, valid := range models.ValidConditions {
		if c == valid {
			return true
		}
	}
	return false
}

// Create inserts a new listing.
func (s *DefaultListingService) Create(ctx context.Context, l models.Listing) (*models.Listing, error) {
	if l.Condition == "" {
		l.Condition = models.ConditionAvailable
	}
	if err := validate(l); err != nil {
		return nil, err
	}

	id, err := s.Repo.Create(ctx, l)
	if err != nil {
		utils.GetLogger().Error("Failed to create listing", zap.Error(err))
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	s.invalidateCache(ctx)

	return s.Repo.GetByID(ctx, id)
}

// Update replaces a listing in full.
func (s *DefaultListingService) Update(ctx context.Context, l models.Listing) (*models.Listing, error) {
	if l.ID == "" {
		return nil, fmt.Errorf("listing ID is required for update")
	}
	if err := validate(l); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, l); err != nil {
		utils.GetLogger().Error("Failed to update listing", zap.String("listingID", l.ID), zap.Error(err))
		return nil, err
	}
	s.invalidateCache(ctx)

	return s.Repo.GetByID(ctx, l.ID)
}

// Delete removes a listing.
func (s *DefaultListingService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}
