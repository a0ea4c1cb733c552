package leadRepo

import (
	"context"

	"webimmo/database"
	"webimmo/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// LeadRepository persists captured inquiries so a failed email relay never
// loses a lead.
type LeadRepository interface {
	Create(ctx context.Context, lead models.Lead) (string, error)
	GetAll(ctx context.Context) ([]models.Lead, error)
	MarkEmailSent(ctx context.Context, id string) error
}

type mongoLeadRepo struct {
	coll *mongo.Collection
}

// NewMongoLeadRepo returns a LeadRepository backed by the "leads" collection.
func NewMongoLeadRepo() LeadRepository {
	return &mongoLeadRepo{
		coll: database.Collection("leads"),
	}
}
