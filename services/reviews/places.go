package reviews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"webimmo/models"
)

// statusOK is the Places API success sentinel.
const statusOK = "OK"

const defaultPlacesBaseURL = "https://maps.googleapis.com/maps/api/place/details/json"

// PlaceDetails is the Places API response envelope.
type PlaceDetails struct {
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message"`
	Result       *PlaceResult `json:"result"`
}

type PlaceResult struct {
	Name             string          `json:"name"`
	Rating           float64         `json:"rating"`
	Reviews          []models.Review `json:"reviews"`
	UserRatingsTotal int             `json:"user_ratings_total"`
	Types            []string        `json:"types"`
}

// PlacesClient fetches place details from the Google Places API.
type PlacesClient interface {
	FetchPlaceDetails(ctx context.Context, apiKey, placeID string) (*PlaceDetails, error)
}

// HTTPPlacesClient is the production PlacesClient.
type HTTPPlacesClient struct {
	BaseURL string
	Client  *http.Client
}

// NewPlacesClient returns an HTTPPlacesClient against the live endpoint.
func NewPlacesClient() *HTTPPlacesClient {
	return &HTTPPlacesClient{
		BaseURL: defaultPlacesBaseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchPlaceDetails issues a single GET requesting name, rating, reviews,
// total count and business types, with French as the response language.
func (c *HTTPPlacesClient) FetchPlaceDetails(ctx context.Context, apiKey, placeID string) (*PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "name,rating,reviews,user_ratings_total,types")
	params.Set("key", apiKey)
	params.Set("language", "fr")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("places: failed to build request: %w", err)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places: request failed: %w", err)
	}
	defer resp.Body.Close()

	var details PlaceDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, fmt.Errorf("places: failed to decode response: %w", err)
	}
	return &details, nil
}
