package models

import "time"

// LeadKind distinguishes the three capture forms on the public site.
type LeadKind string

const (
	LeadSale      LeadKind = "sale"
	LeadValuation LeadKind = "valuation"
	LeadContact   LeadKind = "contact"
)

// LeadContactInfo is the contact block shared by every form.
type LeadContactInfo struct {
	Gender    string `bson:"gender,omitempty" json:"gender,omitempty"` // monsieur / madame
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`
}

// SaleLead is a "sell my property" inquiry.
type SaleLead struct {
	Address      string          `bson:"address" json:"address"`
	PropertyType string          `bson:"propertyType" json:"propertyType"`
	Message      string          `bson:"message,omitempty" json:"message,omitempty"`
	Contact      LeadContactInfo `bson:"contact" json:"contact"`
}

// ValuationRequest carries the multi-step estimation form payload.
type ValuationRequest struct {
	Address            string          `bson:"address" json:"address"`
	PropertyType       string          `bson:"propertyType" json:"propertyType"` // appartement, maison, terrain, local commercial
	LivingArea         string          `bson:"livingArea" json:"livingArea"`
	LandArea           string          `bson:"landArea,omitempty" json:"landArea,omitempty"`
	Floors             string          `bson:"floors,omitempty" json:"floors,omitempty"`
	Rooms              string          `bson:"rooms,omitempty" json:"rooms,omitempty"`
	Bedrooms           string          `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	ConstructionPeriod string          `bson:"constructionPeriod,omitempty" json:"constructionPeriod,omitempty"`
	Condition          string          `bson:"condition,omitempty" json:"condition,omitempty"`
	Features           []string        `bson:"features,omitempty" json:"features,omitempty"`
	SaleTimeline       string          `bson:"saleTimeline,omitempty" json:"saleTimeline,omitempty"`
	Contact            LeadContactInfo `bson:"contact" json:"contact"`
}

// ContactMessage is a plain contact-form submission.
type ContactMessage struct {
	Subject string          `bson:"subject,omitempty" json:"subject,omitempty"`
	Message string          `bson:"message" json:"message"`
	Contact LeadContactInfo `bson:"contact" json:"contact"`
}

// Lead is the stored record for any captured inquiry. The form payload is
// flattened into Fields, which is also what gets relayed to the email
// template.
type Lead struct {
	ID        string            `bson:"id" json:"id"`
	Kind      LeadKind          `bson:"kind" json:"kind"`
	Fields    map[string]string `bson:"fields" json:"fields"`
	EmailSent bool              `bson:"emailSent" json:"emailSent"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
}
