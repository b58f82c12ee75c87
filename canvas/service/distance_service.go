// canvas/service/distance_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/walkcanvas/go-services/canvas/store"
	"github.com/walkcanvas/go-services/shared/models"
)

// LeaderboardLimit caps the ranked read-back of the distance ledger.
const LeaderboardLimit = 100

// DistanceService encapsulates the business logic of the distance ledger:
// accumulate-and-upsert per identity and the ranked leaderboard view.
type DistanceService struct {
	distanceStore DistanceStore
}

// NewDistanceService creates a new DistanceService instance.
func NewDistanceService(ds DistanceStore) *DistanceService {
	return &DistanceService{
		distanceStore: ds,
	}
}

// AccumulateResult reports the outcome of one accumulate operation.
type AccumulateResult struct {
	Created       bool
	TotalDistance float64
}

// Accumulate adds delta to the identity's stored total (0 if the record is
// absent) and upserts the result. Negative deltas are applied as-is; the
// source behavior permits them and whether they should be rejected is an
// unresolved product question.
func (ds *DistanceService) Accumulate(ctx context.Context, email string, delta float64, username, timestamp string) (*AccumulateResult, error) {
	existing, err := ds.distanceStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		return nil, fmt.Errorf("service failed to read distance record: %w", err)
	}

	var prior float64
	var stored string
	created := existing == nil
	if existing != nil {
		prior = existing.Distance
		stored = existing.Username
	}

	record := &models.DistanceRecord{
		Email:       email,
		Username:    resolveUsername(username, stored),
		Distance:    prior + delta,
		LastUpdated: resolveTimestamp(timestamp),
	}
	if err := ds.distanceStore.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("service failed to upsert distance record: %w", err)
	}

	return &AccumulateResult{
		Created:       created,
		TotalDistance: record.Distance,
	}, nil
}

// Leaderboard returns the top identities by distance, capped at
// LeaderboardLimit, projected without emails.
func (ds *DistanceService) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	records, err := ds.distanceStore.TopByDistance(ctx, LeaderboardLimit)
	if err != nil {
		return nil, fmt.Errorf("service failed to read leaderboard: %w", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, models.LeaderboardEntry{
			Username: r.Username,
			Distance: r.Distance,
		})
	}
	return entries, nil
}

// resolveUsername implements the display-name fallback chain:
// request value, else previously stored value, else the default.
func resolveUsername(requested, stored string) string {
	if requested != "" {
		return requested
	}
	if stored != "" {
		return stored
	}
	return models.DefaultUsername
}

// resolveTimestamp parses an optional client-supplied RFC3339 timestamp,
// falling back to server time when absent or malformed.
func resolveTimestamp(timestamp string) time.Time {
	if timestamp == "" {
		return time.Now()
	}
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		log.Printf("WARN: Ignoring unparseable client timestamp %q: %v", timestamp, err)
		return time.Now()
	}
	return t
}
