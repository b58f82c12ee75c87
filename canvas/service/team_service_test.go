// canvas/service/team_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walkcanvas/go-services/shared/models"
)

func TestCreateTeamThenListByCreator(t *testing.T) {
	ft := newFakeTeamStore()
	svc := NewTeamService(ft, newFakeDrawingStore())
	ctx := context.Background()

	id, err := svc.Create(ctx, "Walkers", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	teams, err := svc.ListByCreator(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, id, teams[0].ID)
	assert.Equal(t, "Walkers", teams[0].TeamName)
	assert.Equal(t, "a@x.com", teams[0].CreatorEmail)
	assert.Empty(t, teams[0].DrawingIDs)

	// Another creator's listing stays empty.
	other, err := svc.ListByCreator(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestTeamDrawingsUnknownTeam(t *testing.T) {
	svc := NewTeamService(newFakeTeamStore(), newFakeDrawingStore())
	_, err := svc.Drawings(context.Background(), "no-such-team")
	assert.ErrorIs(t, err, ErrTeamNotAccessible)
}

func TestTeamDrawingsEmptyTeamSkipsLookup(t *testing.T) {
	ft := newFakeTeamStore()
	fd := newFakeDrawingStore()
	svc := NewTeamService(ft, fd)
	ctx := context.Background()

	id, err := svc.Create(ctx, "Walkers", "a@x.com")
	require.NoError(t, err)

	views, err := svc.Drawings(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, views)
	assert.Zero(t, fd.findByIDsCalls)
}

func TestTeamDrawingsToleratesStaleReferences(t *testing.T) {
	ft := newFakeTeamStore()
	fd := newFakeDrawingStore()
	teamSvc := NewTeamService(ft, fd)
	drawingSvc := NewDrawingService(fd, ft)
	ctx := context.Background()

	teamID, err := teamSvc.Create(ctx, "Walkers", "a@x.com")
	require.NoError(t, err)
	drawingID, err := drawingSvc.Create(ctx, CreateDrawingInput{
		Email:       "a@x.com",
		Coordinates: []models.LatLng{{Lat: 1, Lng: 2}},
		TeamIDs:     []string{teamID},
	})
	require.NoError(t, err)

	// A reference to a drawing that never landed must not break the read.
	ft.teams[teamID].DrawingIDs = append(ft.teams[teamID].DrawingIDs, "ghost-drawing")

	views, err := teamSvc.Drawings(ctx, teamID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, drawingID, views[0].ID)
}
