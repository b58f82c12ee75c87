// canvas/service/team_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/walkcanvas/go-services/canvas/store"
	"github.com/walkcanvas/go-services/shared/models"
)

// Defensive bounds on team reads; the source had none, but an unbounded
// find is a liability once a creator or team grows.
const (
	TeamListLimit     = 200
	TeamDrawingsLimit = 500
)

// TeamService encapsulates the business logic for teams.
type TeamService struct {
	teamStore    TeamStore
	drawingStore DrawingStore
}

// NewTeamService creates a new TeamService instance.
func NewTeamService(ts TeamStore, ds DrawingStore) *TeamService {
	return &TeamService{
		teamStore:    ts,
		drawingStore: ds,
	}
}

// Create registers a new empty team owned by creatorEmail.
func (ts *TeamService) Create(ctx context.Context, teamName, creatorEmail string) (string, error) {
	team := &models.Team{
		ID:           uuid.New().String(),
		TeamName:     teamName,
		CreatorEmail: creatorEmail,
		CreatedAt:    time.Now(),
		DrawingIDs:   []string{},
	}
	if err := ts.teamStore.Insert(ctx, team); err != nil {
		return "", fmt.Errorf("service failed to create team: %w", err)
	}
	return team.ID, nil
}

// ListByCreator returns the creator's teams, newest first.
func (ts *TeamService) ListByCreator(ctx context.Context, creatorEmail string) ([]models.Team, error) {
	teams, err := ts.teamStore.ListByCreator(ctx, creatorEmail, TeamListLimit)
	if err != nil {
		return nil, fmt.Errorf("service failed to list teams: %w", err)
	}
	return teams, nil
}

// Drawings resolves the team's drawing back-references into drawing views,
// newest first. The reference list is maintained best-effort, so ids of
// drawings that never landed are tolerated and simply absent from the
// result. An unknown team id reports ErrTeamNotAccessible; the source
// treats "no such team" and "not a member" as one condition.
func (ts *TeamService) Drawings(ctx context.Context, teamID string) ([]models.DrawingView, error) {
	team, err := ts.teamStore.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, store.ErrTeamNotFound) {
			return nil, ErrTeamNotAccessible
		}
		return nil, fmt.Errorf("service failed to get team: %w", err)
	}

	if len(team.DrawingIDs) == 0 {
		return []models.DrawingView{}, nil
	}

	drawings, err := ts.drawingStore.FindByIDs(ctx, team.DrawingIDs, TeamDrawingsLimit)
	if err != nil {
		return nil, fmt.Errorf("service failed to resolve team drawings: %w", err)
	}
	return toViews(drawings), nil
}
