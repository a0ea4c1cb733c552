package leadRepo

import (
	"context"
	"errors"
	"time"

	"webimmo/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrLeadNotFound = errors.New("lead not found")

func (r *mongoLeadRepo) Create(ctx context.Context, lead models.Lead) (string, error) {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	lead.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, lead); err != nil {
		return "", err
	}
	return lead.ID, nil
}

func (r *mongoLeadRepo) GetAll(ctx context.Context) ([]models.Lead, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *mongoLeadRepo) MarkEmailSent(ctx context.Context, id string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"emailSent": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrLeadNotFound
	}
	return nil
}
