package models

import "time"

// Review is a single Google review as cached in the summary document. Field
// names mirror the Places API payload so the stored document matches what
// the site has always read.
type Review struct {
	AuthorName      string  `bson:"author_name" json:"author_name"`
	Rating          float64 `bson:"rating" json:"rating"`
	Text            string  `bson:"text" json:"text"`
	Time            int64   `bson:"time" json:"time"` // unix seconds
	ProfilePhotoURL string  `bson:"profile_photo_url,omitempty" json:"profile_photo_url,omitempty"`
	RelativeTime    string  `bson:"relative_time_description,omitempty" json:"relative_time_description,omitempty"`
}

// ReviewSummary is the single cached document holding aggregated review
// data for the agency. There is exactly one instance, keyed by a fixed
// document ID; every sync run overwrites it in full.
type ReviewSummary struct {
	Reviews       []Review  `bson:"reviews" json:"reviews"`
	AverageRating float64   `bson:"averageRating" json:"averageRating"`
	ReviewCount   int       `bson:"reviewCount" json:"reviewCount"`
	BusinessName  string    `bson:"businessName" json:"businessName"`
	BusinessTypes []string  `bson:"businessTypes" json:"businessTypes"`
	LastUpdated   time.Time `bson:"lastUpdated" json:"lastUpdated"`
}
