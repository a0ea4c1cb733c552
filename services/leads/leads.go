package leads

import (
	"context"
	"fmt"
	"strings"

	"webimmo/config"
	"webimmo/models"
	"webimmo/utils"

	"go.uber.org/zap"
)

// validateContact rejects submissions missing the fields every form
// requires. Invalid input never reaches the store or the relay.
func validateContact(c models.LeadContactInfo) error {
	if c.FirstName == "" || c.LastName == "" {
		return fmt.Errorf("first and last name are required")
	}
	if c.Email == "" && c.Phone == "" {
		return fmt.Errorf("an email address or phone number is required")
	}
	if c.Email != "" && !looksLikeEmail(c.Email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && strings.Contains(s[at:], ".")
}

func contactFields(c models.LeadContactInfo) map[string]string {
	return map[string]string{
		"gender":    c.Gender,
		"firstName": c.FirstName,
		"lastName":  c.LastName,
		"email":     c.Email,
		"phone":     c.Phone,
	}
}

// SubmitSaleLead captures a "sell my property" inquiry.
func (s *DefaultLeadService) SubmitSaleLead(ctx context.Context, lead models.SaleLead) (bool, error) {
	if err := validateContact(lead.Contact); err != nil {
		return false, err
	}
	if lead.Address == "" {
		return false, fmt.Errorf("property address is required")
	}

	fields := contactFields(lead.Contact)
	fields["address"] = lead.Address
	fields["propertyType"] = lead.PropertyType
	fields["message"] = lead.Message

	return s.capture(ctx, models.LeadSale, config.AppConfig.EmailJSSaleTemplate, fields)
}

// SubmitValuationRequest captures the multi-step estimation form.
func (s *DefaultLeadService) SubmitValuationRequest(ctx context.Context, req models.ValuationRequest) (bool, error) {
	if err := validateContact(req.Contact); err != nil {
		return false, err
	}
	if req.Address == "" {
		return false, fmt.Errorf("property address is required")
	}
	if req.PropertyType == "" {
		return false, fmt.Errorf("property type is required")
	}

	fields := contactFields(req.Contact)
	fields["address"] = req.Address
	fields["propertyType"] = req.PropertyType
	fields["livingArea"] = req.LivingArea
	fields["landArea"] = req.LandArea
	fields["floors"] = req.Floors
	fields["rooms"] = req.Rooms
	fields["bedrooms"] = req.Bedrooms
	fields["constructionPeriod"] = req.ConstructionPeriod
	fields["condition"] = req.Condition
	fields["features"] = strings.Join(req.Features, ", ")
	fields["saleTimeline"] = req.SaleTimeline

	return s.capture(ctx, models.LeadValuation, config.AppConfig.EmailJSValuationTemplate, fields)
}

// SubmitContactMessage captures a plain contact-form submission.
func (s *DefaultLeadService) SubmitContactMessage(ctx context.Context, msg models.ContactMessage) (bool, error) {
	if err := validateContact(msg.Contact); err != nil {
		return false, err
	}
	if msg.Message == "" {
		return false, fmt.Errorf("message body is required")
	}

	fields := contactFields(msg.Contact)
	fields["subject"] = msg.Subject
	fields["message"] = msg.Message

	return s.capture(ctx, models.LeadContact, config.AppConfig.EmailJSContactTemplate, fields)
}

// GetAll returns every captured lead, newest first. Admin only.
func (s *DefaultLeadService) GetAll(ctx context.Context) ([]models.Lead, error) {
	return s.Repo.GetAll(ctx)
}

// capture persists the lead, then relays it. A relay failure is logged and
// left visible on the record (EmailSent=false) but does not fail the
// submission: the lead is already safe in the store. The bool result tells
// the caller whether the notification actually went out.
func (s *DefaultLeadService) capture(ctx context.Context, kind models.LeadKind, templateID string, fields map[string]string) (bool, error) {
	logger := utils.GetLogger()

	id, err := s.Repo.Create(ctx, models.Lead{Kind: kind, Fields: fields})
	if err != nil {
		logger.Error("Failed to store lead", zap.String("kind", string(kind)), zap.Error(err))
		return false, fmt.Errorf("failed to store lead: %w", err)
	}

	if err := s.Relay.Send(ctx, templateID, fields); err != nil {
		logger.Error("Failed to relay lead notification",
			zap.String("kind", string(kind)), zap.String("leadID", id), zap.Error(err))
		return false, nil
	}

	if err := s.Repo.MarkEmailSent(ctx, id); err != nil {
		logger.Warn("Failed to flag lead as emailed", zap.String("leadID", id), zap.Error(err))
	}
	return true, nil
}
