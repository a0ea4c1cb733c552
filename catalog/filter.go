// Package catalog implements the in-memory listing filter used by the
// public search. Filtering is pure: the repository loads the full listing
// set once and Matches decides inclusion per record with no side effects.
package catalog

import (
	"strings"

	"webimmo/models"
)

// Matches reports whether a listing satisfies every active criterion. It
// never panics: a numeric field that fails to parse fails its bound check
// and excludes the listing. The price ceiling is always active; the size
// and room minimums only apply when a positive minimum is requested, so a
// listing with blank or free-text size still appears in permissive
// searches.
func Matches(c models.SearchCriteria, l models.Listing) bool {
	if c.Condition != models.ConditionAll && l.Condition != c.Condition {
		return false
	}

	price, ok := ParseAmount(l.Price)
	if !ok || price > c.MaxPrice {
		return false
	}

	if c.MinSize > 0 {
		size, ok := ParseAmount(l.Size)
		if !ok || size < c.MinSize {
			return false
		}
	}

	// Property types are match-any: one shared tag is enough.
	if len(c.PropertyTypes) > 0 && !intersects(l.Types, c.PropertyTypes) {
		return false
	}

	if !meetsMinimum(l.Rooms, c.MinRooms) ||
		!meetsMinimum(l.Bedrooms, c.MinBedrooms) ||
		!meetsMinimum(l.Bathrooms, c.MinBathrooms) {
		return false
	}

	// Amenities are match-all: every requested tag must be present. The
	// asymmetry with property types is deliberate.
	if len(c.Amenities) > 0 && !containsAll(l.Amenities, c.Amenities) {
		return false
	}

	if c.Location != "" &&
		!strings.Contains(strings.ToLower(l.Location), strings.ToLower(c.Location)) {
		return false
	}

	return true
}

// Filter returns the listings matching the criteria, preserving input
// order. Running it twice over the same inputs yields identical output.
func Filter(c models.SearchCriteria, listings []models.Listing) []models.Listing {
	matched := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if Matches(c, l) {
			matched = append(matched, l)
		}
	}
	return matched
}

func meetsMinimum(raw string, min float64) bool {
	if min <= 0 {
		return true
	}
	v, ok := ParseAmount(raw)
	return ok && v >= min
}

func intersects(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func containsAll(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
