package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"webimmo/models"

	"github.com/gin-gonic/gin"
)

type fakeLeadService struct {
	emailSent bool
}

func (f *fakeLeadService) SubmitSaleLead(ctx context.Context, lead models.SaleLead) (bool, error) {
	return f.emailSent, nil
}

func (f *fakeLeadService) SubmitValuationRequest(ctx context.Context, req models.ValuationRequest) (bool, error) {
	return f.emailSent, nil
}

func (f *fakeLeadService) SubmitContactMessage(ctx context.Context, msg models.ContactMessage) (bool, error) {
	return f.emailSent, nil
}

func (f *fakeLeadService) GetAll(ctx context.Context) ([]models.Lead, error) {
	return nil, nil
}

func submitContact(t *testing.T, svc *fakeLeadService) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewLeadsHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	payload := `{"message": "Bonjour", "contact": {"firstName": "Jean", "lastName": "Dupont", "email": "jean@example.com"}}`
	c.Request = httptest.NewRequest("POST", "/api/leads/contact", strings.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	h.SubmitContactHandler(c)

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return w.Code, body
}

func TestSubmitContactReportsRelayOutcome(t *testing.T) {
	code, body := submitContact(t, &fakeLeadService{emailSent: true})
	if code != 201 {
		t.Fatalf("expected 201, got %d", code)
	}
	if body["emailSent"] != true {
		t.Fatalf("expected emailSent=true in response, got %v", body)
	}

	// The lead is stored either way, so the submission still succeeds, but
	// a failed notification must be visible in the response.
	code, body = submitContact(t, &fakeLeadService{emailSent: false})
	if code != 201 {
		t.Fatalf("expected 201 for a stored lead with failed relay, got %d", code)
	}
	if body["success"] != true || body["emailSent"] != false {
		t.Fatalf("expected success=true with emailSent=false, got %v", body)
	}
}
