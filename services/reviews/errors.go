package reviews

import "fmt"

// ConfigError reports a missing credential or identifier. Runs failing this
// way made no network call and are never retried automatically.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("reviews: missing required configuration: %s", e.Field)
}

// UpstreamError reports a non-success status from the Places API.
type UpstreamError struct {
	Status  string
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("reviews: upstream returned status %s", e.Status)
	}
	return fmt.Sprintf("reviews: upstream returned status %s: %s", e.Status, e.Message)
}

// NotFoundError reports a success response carrying no result payload for
// the requested place.
type NotFoundError struct {
	PlaceID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("reviews: no place data found for place_id %s", e.PlaceID)
}
