package models

// SearchCriteria is the visitor's current set of catalog filters. It is
// transient: bound from the search request, applied in memory, never stored.
type SearchCriteria struct {
	Location      string           `json:"location"`
	MaxPrice      float64          `json:"maxPrice"`
	MinSize       float64          `json:"minSize"`
	PropertyTypes []string         `json:"propertyTypes"` // empty = any type (match-any)
	MinRooms      float64          `json:"minRooms"`
	MinBedrooms   float64          `json:"minBedrooms"`
	MinBathrooms  float64          `json:"minBathrooms"`
	Amenities     []string         `json:"amenities"` // empty = none required, otherwise ALL must be present
	Condition     ListingCondition `json:"condition"` // "all" bypasses the check
}

// DefaultCriteria returns the permissive defaults the catalog view starts
// from: everything matches until the visitor narrows the search.
func DefaultCriteria() SearchCriteria {
	return SearchCriteria{
		MaxPrice:  MaxPriceCeiling,
		Condition: ConditionAll,
	}
}

// MaxPriceCeiling is the upper bound offered by the search form.
const MaxPriceCeiling = 2_000_000
