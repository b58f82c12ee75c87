// canvas/service/fakes_test.go
package service

import (
	"context"
	"sort"
	"time"

	"github.com/walkcanvas/go-services/canvas/store"
	"github.com/walkcanvas/go-services/shared/models"
)

// In-memory store fakes mirroring the MongoDB stores' observable behavior,
// including the sentinel errors and the atomic single-vote rule.

type fakeDistanceStore struct {
	records map[string]models.DistanceRecord
	getErr  error
	putErr  error
}

func newFakeDistanceStore() *fakeDistanceStore {
	return &fakeDistanceStore{records: make(map[string]models.DistanceRecord)}
}

func (f *fakeDistanceStore) GetByEmail(_ context.Context, email string) (*models.DistanceRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	rec, ok := f.records[email]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	return &rec, nil
}

func (f *fakeDistanceStore) Upsert(_ context.Context, record *models.DistanceRecord) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.records[record.Email] = *record
	return nil
}

func (f *fakeDistanceStore) TopByDistance(_ context.Context, limit int64) ([]models.DistanceRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	records := make([]models.DistanceRecord, 0, len(f.records))
	for _, rec := range f.records {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Distance > records[j].Distance })
	if int64(len(records)) > limit {
		records = records[:limit]
	}
	return records, nil
}

type fakeDrawingStore struct {
	drawings       map[string]*models.Drawing
	insertErr      error
	findByIDsCalls int
}

func newFakeDrawingStore() *fakeDrawingStore {
	return &fakeDrawingStore{drawings: make(map[string]*models.Drawing)}
}

func (f *fakeDrawingStore) Insert(_ context.Context, drawing *models.Drawing) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	copied := *drawing
	f.drawings[drawing.ID] = &copied
	return nil
}

func (f *fakeDrawingStore) AddVote(_ context.Context, drawingID, voterEmail string, votedAt time.Time) error {
	drawing, ok := f.drawings[drawingID]
	if !ok {
		return store.ErrDrawingNotFound
	}
	for _, v := range drawing.Votes {
		if v.VoterEmail == voterEmail {
			return store.ErrDuplicateVote
		}
	}
	drawing.Votes = append(drawing.Votes, models.Vote{VoterEmail: voterEmail, VotedAt: votedAt})
	drawing.VoteCount++
	return nil
}

func (f *fakeDrawingStore) ListSorted(_ context.Context, key store.DrawingSort, publicOnly bool, limit int64) ([]models.Drawing, error) {
	var drawings []models.Drawing
	for _, d := range f.drawings {
		if publicOnly && !d.IsPublic {
			continue
		}
		drawings = append(drawings, *d)
	}
	sort.Slice(drawings, func(i, j int) bool {
		if key == store.SortByVotes && drawings[i].VoteCount != drawings[j].VoteCount {
			return drawings[i].VoteCount > drawings[j].VoteCount
		}
		return drawings[i].CreatedAt.After(drawings[j].CreatedAt)
	})
	if int64(len(drawings)) > limit {
		drawings = drawings[:limit]
	}
	return drawings, nil
}

func (f *fakeDrawingStore) FindByIDs(_ context.Context, ids []string, limit int64) ([]models.Drawing, error) {
	f.findByIDsCalls++
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var drawings []models.Drawing
	for id, d := range f.drawings {
		if _, ok := wanted[id]; ok {
			drawings = append(drawings, *d)
		}
	}
	sort.Slice(drawings, func(i, j int) bool { return drawings[i].CreatedAt.After(drawings[j].CreatedAt) })
	if int64(len(drawings)) > limit {
		drawings = drawings[:limit]
	}
	return drawings, nil
}

type fakeTeamStore struct {
	teams     map[string]*models.Team
	insertErr error
}

func newFakeTeamStore() *fakeTeamStore {
	return &fakeTeamStore{teams: make(map[string]*models.Team)}
}

func (f *fakeTeamStore) Insert(_ context.Context, team *models.Team) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	copied := *team
	f.teams[team.ID] = &copied
	return nil
}

func (f *fakeTeamStore) GetByID(_ context.Context, teamID string) (*models.Team, error) {
	team, ok := f.teams[teamID]
	if !ok {
		return nil, store.ErrTeamNotFound
	}
	copied := *team
	return &copied, nil
}

func (f *fakeTeamStore) ListByCreator(_ context.Context, creatorEmail string, limit int64) ([]models.Team, error) {
	var teams []models.Team
	for _, t := range f.teams {
		if t.CreatorEmail == creatorEmail {
			teams = append(teams, *t)
		}
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].CreatedAt.After(teams[j].CreatedAt) })
	if int64(len(teams)) > limit {
		teams = teams[:limit]
	}
	return teams, nil
}

func (f *fakeTeamStore) AddDrawingID(_ context.Context, teamID, drawingID string) error {
	team, ok := f.teams[teamID]
	if !ok {
		return store.ErrTeamNotFound
	}
	for _, id := range team.DrawingIDs {
		if id == drawingID {
			return nil
		}
	}
	team.DrawingIDs = append(team.DrawingIDs, drawingID)
	return nil
}
