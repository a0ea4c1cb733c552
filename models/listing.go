package models

import "time"

// ListingCondition is the sale status of a property.
type ListingCondition string

const (
	ConditionAvailable       ListingCondition = "available"
	ConditionUnderOffer      ListingCondition = "under-offer"
	ConditionUnderCompromise ListingCondition = "under-compromise"
	ConditionSold            ListingCondition = "sold"
	ConditionPending         ListingCondition = "pending"
)

// ConditionAll is the criteria sentinel that bypasses the condition check.
const ConditionAll ListingCondition = "all"

// ValidConditions lists every condition a listing may carry.
var ValidConditions = []ListingCondition{
	ConditionAvailable,
	ConditionUnderOffer,
	ConditionUnderCompromise,
	ConditionSold,
	ConditionPending,
}

// PropertyTypes is the fixed vocabulary for listing type tags.
var PropertyTypes = []string{"apartment", "house", "commercial-space", "land"}

// Listing is one property-for-sale record.
//
// Price, size and the room counts are stored as free text: the admin panel
// has always accepted whatever was typed, and older documents carry values
// like "350 000 €". Every numeric read goes through catalog.ParseAmount.
type Listing struct {
	ID             string           `bson:"id" json:"id"`
	Title          string           `bson:"title" json:"title"`
	Price          string           `bson:"price" json:"price"`
	Size           string           `bson:"size" json:"size"` // square meters
	Types          []string         `bson:"types" json:"types"`
	Rooms          string           `bson:"rooms" json:"rooms"`
	Bedrooms       string           `bson:"bedrooms" json:"bedrooms"`
	Bathrooms      string           `bson:"bathrooms" json:"bathrooms"`
	WC             string           `bson:"wc" json:"wc"`
	Amenities      []string         `bson:"amenities" json:"amenities"`
	Location       string           `bson:"location" json:"location"`
	Images         []string         `bson:"images" json:"images"`
	Videos         []string         `bson:"videos,omitempty" json:"videos,omitempty"`
	PrincipalImage string           `bson:"principalImage,omitempty" json:"principalImage,omitempty"`
	Description    string           `bson:"description" json:"description"` // may contain lightweight markup
	Condition      ListingCondition `bson:"condition" json:"condition"`
	EnergyGrade    string           `bson:"energyGrade,omitempty" json:"energyGrade,omitempty"` // A-G
	CreatedAt      time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time        `bson:"updatedAt" json:"updatedAt"`

	// Legacy single-value fields still present on old documents. They are
	// folded into Types/Images at the repository boundary and never written
	// back.
	LegacyType  string `bson:"type,omitempty" json:"-"`
	LegacyImage string `bson:"image,omitempty" json:"-"`
}

// Normalize folds legacy single-value fields into the list shapes and
// repairs the principal image reference. Called on every document read.
func (l *Listing) Normalize() {
	if len(l.Types) == 0 && l.LegacyType != "" {
		l.Types = []string{l.LegacyType}
	}
	if len(l.Images) == 0 && l.LegacyImage != "" {
		l.Images = []string{l.LegacyImage}
	}
	l.LegacyType = ""
	l.LegacyImage = ""
	if l.PrincipalImage == "" && len(l.Images) > 0 {
		l.PrincipalImage = l.Images[0]
	}
}

// HasPrincipalImage reports whether the designated principal image is a
// member of the images list. A listing without a principal image is fine.
func (l *Listing) HasPrincipalImage() bool {
	if l.PrincipalImage == "" {
		return true
	}
	for _, img := range l.Images {
		if img == l.PrincipalImage {
			return true
		}
	}
	return false
}
