package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"webimmo/config"
)

// EmailRelay dispatches a notification email through a template-based
// relay. Success or failure is reported synchronously.
type EmailRelay interface {
	Send(ctx context.Context, templateID string, params map[string]string) error
}

// EmailJSRelay implements EmailRelay against the EmailJS REST API.
type EmailJSRelay struct {
	Endpoint  string
	ServiceID string
	UserID    string
	Client    *http.Client
}

// NewEmailJSRelay builds a relay from the application configuration.
func NewEmailJSRelay() *EmailJSRelay {
	return &EmailJSRelay{
		Endpoint:  config.AppConfig.EmailJSEndpoint,
		ServiceID: config.AppConfig.EmailJSServiceID,
		UserID:    config.AppConfig.EmailJSUserID,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type emailJSPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts the template id plus flat key-value payload to EmailJS.
func (r *EmailJSRelay) Send(ctx context.Context, templateID string, params map[string]string) error {
	if r.ServiceID == "" || r.UserID == "" {
		return fmt.Errorf("emailjs relay is not configured")
	}
	if templateID == "" {
		return fmt.Errorf("emailjs template id is empty")
	}

	body, err := json.Marshal(emailJSPayload{
		ServiceID:      r.ServiceID,
		TemplateID:     templateID,
		UserID:         r.UserID,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("email relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email relay returned %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
