package leads

import (
	"context"

	leadRepo "webimmo/database/repository/lead"
	"webimmo/models"
)

// LeadService captures inquiries from the public forms: each submission is
// validated, persisted, then relayed to the agency inbox. The bool result
// reports whether the notification email went out; a false with a nil
// error means the lead was stored but the relay failed.
type LeadService interface {
	SubmitSaleLead(ctx context.Context, lead models.SaleLead) (bool, error)
	SubmitValuationRequest(ctx context.Context, req models.ValuationRequest) (bool, error)
	SubmitContactMessage(ctx context.Context, msg models.ContactMessage) (bool, error)
	GetAll(ctx context.Context) ([]models.Lead, error)
}

// DefaultLeadService is the production LeadService.
type DefaultLeadService struct {
	Repo  leadRepo.LeadRepository
	Relay EmailRelay
}
