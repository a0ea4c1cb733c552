package articleRepo

import (
	"context"

	"webimmo/database"
	"webimmo/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ArticleRepository abstracts persistence for blog articles.
type ArticleRepository interface {
	GetAll(ctx context.Context) ([]models.Article, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetByCategory(ctx context.Context, category models.ArticleCategory) ([]models.Article, error)
	Create(ctx context.Context, article models.Article) (string, error)
	Update(ctx context.Context, article models.Article) error
	Delete(ctx context.Context, id string) error
}

type mongoArticleRepo struct {
	coll *mongo.Collection
}

// NewMongoArticleRepo returns an ArticleRepository backed by the "articles"
// collection.
func NewMongoArticleRepo() ArticleRepository {
	return &mongoArticleRepo{
		coll: database.Collection("articles"),
	}
}
