// canvas/store/team_store.go
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/walkcanvas/go-services/shared/models"
)

// TeamStore represents the MongoDB data store for teams.
type TeamStore struct {
	collection *mongo.Collection
}

// NewTeamStore creates a new TeamStore instance.
func NewTeamStore(collection *mongo.Collection) *TeamStore {
	return &TeamStore{
		collection: collection,
	}
}

// Insert stores a new team document.
func (ts *TeamStore) Insert(ctx context.Context, team *models.Team) error {
	_, err := ts.collection.InsertOne(ctx, team)
	if err != nil {
		return fmt.Errorf("failed to insert team %s: %w", team.ID, err)
	}
	return nil
}

// GetByID retrieves a team by id. Returns ErrTeamNotFound if absent.
func (ts *TeamStore) GetByID(ctx context.Context, teamID string) (*models.Team, error) {
	var team models.Team
	filter := bson.M{"_id": teamID}
	err := ts.collection.FindOne(ctx, filter).Decode(&team)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %s: %w", teamID, err)
	}
	return &team, nil
}

// ListByCreator returns the teams created by the given identity, newest
// first, capped at limit.
func (ts *TeamStore) ListByCreator(ctx context.Context, creatorEmail string, limit int64) ([]models.Team, error) {
	filter := bson.M{"creator_email": creatorEmail}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := ts.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for %s: %w", creatorEmail, err)
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err = cursor.All(ctx, &teams); err != nil {
		return nil, fmt.Errorf("failed to decode teams for %s: %w", creatorEmail, err)
	}
	return teams, nil
}

// AddDrawingID records a drawing back-reference on the team. $addToSet
// keeps the list duplicate-free even if the same attach is retried.
func (ts *TeamStore) AddDrawingID(ctx context.Context, teamID, drawingID string) error {
	filter := bson.M{"_id": teamID}
	update := bson.M{"$addToSet": bson.M{"drawing_ids": drawingID}}

	res, err := ts.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to add drawing %s to team %s: %w", drawingID, teamID, err)
	}
	if res.MatchedCount == 0 {
		return ErrTeamNotFound
	}
	return nil
}
