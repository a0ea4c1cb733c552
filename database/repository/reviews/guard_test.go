package reviewsRepo

import (
	"testing"
	"time"

	"webimmo/models"
)

func summaryAt(ts time.Time) models.ReviewSummary {
	return models.ReviewSummary{ReviewCount: 1, LastUpdated: ts}
}

func TestStaleWriteRejectsOlderSummary(t *testing.T) {
	stored := summaryAt(time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC))
	older := summaryAt(stored.LastUpdated.Add(-time.Hour))

	if !staleWrite(&stored, older) {
		t.Fatal("a summary older than the stored one must be rejected")
	}
}

func TestStaleWriteAcceptsNewerAndEqualSummaries(t *testing.T) {
	stored := summaryAt(time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC))

	newer := summaryAt(stored.LastUpdated.Add(time.Hour))
	if staleWrite(&stored, newer) {
		t.Fatal("a newer summary must be accepted")
	}

	// Equal timestamps can happen when two triggers fire within clock
	// resolution; the later completion wins.
	same := summaryAt(stored.LastUpdated)
	if staleWrite(&stored, same) {
		t.Fatal("a summary with the same timestamp must be accepted")
	}
}

func TestStaleWriteAcceptsFirstWrite(t *testing.T) {
	first := summaryAt(time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC))
	if staleWrite(nil, first) {
		t.Fatal("the first write has nothing to be stale against")
	}
}
