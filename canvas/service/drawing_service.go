// canvas/service/drawing_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/walkcanvas/go-services/canvas/store"
	"github.com/walkcanvas/go-services/shared/models"
)

// DrawingListLimit caps the sorted drawing listings.
const DrawingListLimit = 100

// DrawingService encapsulates the business logic for drawings: creation
// with best-effort team attachment, single-vote-per-user voting, and the
// ranked listings.
type DrawingService struct {
	drawingStore DrawingStore
	teamStore    TeamStore
}

// NewDrawingService creates a new DrawingService instance.
func NewDrawingService(ds DrawingStore, ts TeamStore) *DrawingService {
	return &DrawingService{
		drawingStore: ds,
		teamStore:    ts,
	}
}

// CreateDrawingInput carries the fields of a drawing creation request.
type CreateDrawingInput struct {
	Email       string
	Username    string
	Coordinates []models.LatLng
	Timestamp   string
	IsPublic    bool
	TeamIDs     []string
}

// Create inserts a complete drawing document and then attaches it to each
// requested team. Team attachment is best-effort: a missing team or a
// failing update is logged and skipped, and never rolls back the drawing
// nor blocks the remaining teams.
func (ds *DrawingService) Create(ctx context.Context, input CreateDrawingInput) (string, error) {
	coordinates := input.Coordinates
	if coordinates == nil {
		coordinates = []models.LatLng{}
	}

	drawing := &models.Drawing{
		ID:          uuid.New().String(),
		Email:       input.Email,
		Username:    resolveUsername(input.Username, ""),
		Coordinates: coordinates,
		CreatedAt:   resolveTimestamp(input.Timestamp),
		IsPublic:    input.IsPublic,
		TeamIDs:     sanitizeTeamIDs(input.TeamIDs),
		Votes:       []models.Vote{},
		VoteCount:   0,
	}

	if err := ds.drawingStore.Insert(ctx, drawing); err != nil {
		return "", fmt.Errorf("service failed to create drawing: %w", err)
	}

	for _, teamID := range drawing.TeamIDs {
		if err := ds.teamStore.AddDrawingID(ctx, teamID, drawing.ID); err != nil {
			log.Printf("WARN: Failed to attach drawing %s to team %s: %v. Continuing.", drawing.ID, teamID, err)
		}
	}

	return drawing.ID, nil
}

// Vote records a single vote by voterEmail on the drawing. The underlying
// update is atomic, so a voter can never be counted twice.
func (ds *DrawingService) Vote(ctx context.Context, drawingID, voterEmail string) error {
	err := ds.drawingStore.AddVote(ctx, drawingID, voterEmail, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateVote):
			return ErrDuplicateVote
		case errors.Is(err, store.ErrDrawingNotFound):
			return ErrDrawingNotFound
		default:
			return fmt.Errorf("service failed to record vote: %w", err)
		}
	}
	return nil
}

// ListSorted returns drawing views ordered by the given key, capped at
// DrawingListLimit. publicOnly restricts the listing to public drawings.
func (ds *DrawingService) ListSorted(ctx context.Context, sortBy string, publicOnly bool) ([]models.DrawingView, error) {
	var sort store.DrawingSort
	switch sortBy {
	case string(store.SortByVotes):
		sort = store.SortByVotes
	case string(store.SortByDate):
		sort = store.SortByDate
	default:
		return nil, ErrInvalidSortKey
	}

	drawings, err := ds.drawingStore.ListSorted(ctx, sort, publicOnly, DrawingListLimit)
	if err != nil {
		return nil, fmt.Errorf("service failed to list drawings: %w", err)
	}
	return toViews(drawings), nil
}

// sanitizeTeamIDs drops blank entries and collapses duplicates while
// preserving the request order.
func sanitizeTeamIDs(ids []string) []string {
	sanitized := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		sanitized = append(sanitized, id)
	}
	return sanitized
}

func toViews(drawings []models.Drawing) []models.DrawingView {
	views := make([]models.DrawingView, 0, len(drawings))
	for i := range drawings {
		views = append(views, drawings[i].View())
	}
	return views
}
