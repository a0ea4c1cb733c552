package reviews

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	reviewsRepo "webimmo/database/repository/reviews"
	"webimmo/models"
)

type fakeSummaryRepo struct {
	stored       *models.ReviewSummary
	replaceCalls int
}

func (f *fakeSummaryRepo) Get(ctx context.Context) (*models.ReviewSummary, error) {
	if f.stored == nil {
		return nil, reviewsRepo.ErrSummaryNotFound
	}
	return f.stored, nil
}

func (f *fakeSummaryRepo) Replace(ctx context.Context, summary models.ReviewSummary) error {
	f.replaceCalls++
	f.stored = &summary
	return nil
}

// countingPlacesClient wraps the HTTP client and counts outbound calls.
type countingPlacesClient struct {
	inner *HTTPPlacesClient
	calls int
}

func (c *countingPlacesClient) FetchPlaceDetails(ctx context.Context, apiKey, placeID string) (*PlaceDetails, error) {
	c.calls++
	return c.inner.FetchPlaceDetails(ctx, apiKey, placeID)
}

func newTestService(t *testing.T, body string, status int) (*DefaultReviewService, *fakeSummaryRepo, *countingPlacesClient) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("language"); got != "fr" {
			t.Errorf("expected language=fr, got %q", got)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := &countingPlacesClient{inner: &HTTPPlacesClient{
		BaseURL: srv.URL,
		Client:  srv.Client(),
	}}
	repo := &fakeSummaryRepo{}
	svc := NewReviewService(repo, client, "test-key", "test-place")
	return svc, repo, client
}

const successBody = `{
	"status": "OK",
	"result": {
		"name": "Example Agency",
		"rating": 4.6,
		"user_ratings_total": 4,
		"types": ["real_estate_agency", "point_of_interest"],
		"reviews": [
			{"author_name": "Alice", "rating": 5, "text": "Parfait", "time": 1700000000},
			{"author_name": "Bob", "rating": 4, "text": "Très bien", "time": 1700001000},
			{"author_name": "Chloé", "rating": 5, "text": "Super agence", "time": 1700002000},
			{"author_name": "David", "rating": 4, "text": "Bon suivi", "time": 1700003000}
		]
	}
}`

func TestSyncSuccessStoresNormalizedSummary(t *testing.T) {
	svc, repo, _ := newTestService(t, successBody, http.StatusOK)

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	result, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	if result.ReviewCount != 4 {
		t.Fatalf("expected reviewCount 4, got %d", result.ReviewCount)
	}
	if result.BusinessName != "Example Agency" {
		t.Fatalf("expected business name 'Example Agency', got %q", result.BusinessName)
	}
	if result.AverageRating != 4.6 {
		t.Fatalf("expected average rating 4.6, got %v", result.AverageRating)
	}
	if !strings.Contains(result.Message, "4 reviews") {
		t.Fatalf("message should mention the review count, got %q", result.Message)
	}

	if repo.stored == nil {
		t.Fatal("expected a stored summary")
	}
	if repo.stored.ReviewCount != 4 || repo.stored.AverageRating != 4.6 {
		t.Fatalf("stored summary mismatch: %+v", repo.stored)
	}
	if len(repo.stored.Reviews) != 4 {
		t.Fatalf("expected 4 stored reviews, got %d", len(repo.stored.Reviews))
	}
	if !repo.stored.LastUpdated.Equal(fixed) {
		t.Fatalf("expected lastUpdated %v, got %v", fixed, repo.stored.LastUpdated)
	}
}

func TestSyncMissingAPIKeyMakesNoNetworkCall(t *testing.T) {
	svc, repo, client := newTestService(t, successBody, http.StatusOK)
	svc.APIKey = ""

	_, err := svc.Sync(context.Background())

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if client.calls != 0 {
		t.Fatalf("expected zero network calls, got %d", client.calls)
	}
	if repo.replaceCalls != 0 {
		t.Fatalf("expected no store write, got %d", repo.replaceCalls)
	}
}

func TestSyncMissingPlaceIDMakesNoNetworkCall(t *testing.T) {
	svc, _, client := newTestService(t, successBody, http.StatusOK)
	svc.PlaceID = ""

	var cfgErr *ConfigError
	if _, err := svc.Sync(context.Background()); !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if client.calls != 0 {
		t.Fatalf("expected zero network calls, got %d", client.calls)
	}
}

func TestSyncUpstreamErrorWritesNothing(t *testing.T) {
	body := `{"status": "ZERO_RESULTS", "error_message": "no such place"}`
	svc, repo, _ := newTestService(t, body, http.StatusOK)

	_, err := svc.Sync(context.Background())

	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upErr.Status != "ZERO_RESULTS" {
		t.Fatalf("expected status ZERO_RESULTS, got %q", upErr.Status)
	}
	if !strings.Contains(err.Error(), "ZERO_RESULTS") {
		t.Fatalf("error should carry the upstream status, got %q", err.Error())
	}
	if repo.replaceCalls != 0 {
		t.Fatalf("expected no store write, got %d", repo.replaceCalls)
	}
}

func TestSyncMissingResultIsNotFound(t *testing.T) {
	body := `{"status": "OK"}`
	svc, repo, _ := newTestService(t, body, http.StatusOK)

	_, err := svc.Sync(context.Background())

	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if repo.replaceCalls != 0 {
		t.Fatalf("expected no store write, got %d", repo.replaceCalls)
	}
}

func TestSyncDefaultsMissingFields(t *testing.T) {
	body := `{"status": "OK", "result": {"name": "Example Agency"}}`
	svc, repo, _ := newTestService(t, body, http.StatusOK)

	result, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if result.ReviewCount != 0 || result.AverageRating != 0 {
		t.Fatalf("expected zero defaults, got %+v", result)
	}
	if repo.stored.Reviews == nil || len(repo.stored.Reviews) != 0 {
		t.Fatalf("expected empty (non-nil) reviews list, got %#v", repo.stored.Reviews)
	}
	if repo.stored.BusinessTypes == nil {
		t.Fatal("expected empty (non-nil) business types list")
	}
}
