package articleRepo

import (
	"context"
	"errors"
	"time"

	"webimmo/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrArticleNotFound = errors.New("article not found")

func (r *mongoArticleRepo) GetAll(ctx context.Context) ([]models.Article, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var articles []models.Article
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *mongoArticleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	var article models.Article
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *mongoArticleRepo) GetByCategory(ctx context.Context, category models.ArticleCategory) ([]models.Article, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"category": category}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var articles []models.Article
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *mongoArticleRepo) Create(ctx context.Context, article models.Article) (string, error) {
	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	article.CreatedAt = time.Now()
	article.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, article); err != nil {
		return "", err
	}
	return article.ID, nil
}

func (r *mongoArticleRepo) Update(ctx context.Context, article models.Article) error {
	article.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": article.ID}, article)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrArticleNotFound
	}
	return nil
}

func (r *mongoArticleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrArticleNotFound
	}
	return nil
}
