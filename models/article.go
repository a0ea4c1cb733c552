package models

import "time"

// ArticleCategory groups blog articles by audience.
type ArticleCategory string

const (
	CategoryBuyer    ArticleCategory = "buyer"
	CategorySeller   ArticleCategory = "seller"
	CategoryInvestor ArticleCategory = "investor"
	CategoryGeneral  ArticleCategory = "general"
)

// Article is one blog entry.
type Article struct {
	ID        string          `bson:"id" json:"id"`
	Title     string          `bson:"title" json:"title"`
	Category  ArticleCategory `bson:"category" json:"category"`
	Excerpt   string          `bson:"excerpt" json:"excerpt"`
	Content   string          `bson:"content" json:"content"`
	CreatedAt time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time       `bson:"updatedAt" json:"updatedAt"`
}
