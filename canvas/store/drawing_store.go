// canvas/store/drawing_store.go
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/walkcanvas/go-services/shared/models"
)

// DrawingSort selects the ordering of a drawing listing.
type DrawingSort string

const (
	// SortByVotes orders by vote count descending, ties broken by newest first.
	SortByVotes DrawingSort = "votes"
	// SortByDate orders by newest first.
	SortByDate DrawingSort = "date"
)

// DrawingStore represents the MongoDB data store for drawings.
type DrawingStore struct {
	collection *mongo.Collection
}

// NewDrawingStore creates a new DrawingStore instance.
func NewDrawingStore(collection *mongo.Collection) *DrawingStore {
	return &DrawingStore{
		collection: collection,
	}
}

// Insert stores a new drawing document.
func (ds *DrawingStore) Insert(ctx context.Context, drawing *models.Drawing) error {
	_, err := ds.collection.InsertOne(ctx, drawing)
	if err != nil {
		return fmt.Errorf("failed to insert drawing %s: %w", drawing.ID, err)
	}
	return nil
}

// AddVote appends a vote entry and increments the counter in a single
// conditional update. The filter excludes documents that already hold a
// vote from this voter, so two concurrent votes from the same identity
// cannot both apply; the append and the increment land atomically or not
// at all. On zero matches a follow-up lookup distinguishes a duplicate
// vote from a missing drawing.
func (ds *DrawingStore) AddVote(ctx context.Context, drawingID, voterEmail string, votedAt time.Time) error {
	filter := bson.M{
		"_id":               drawingID,
		"votes.voter_email": bson.M{"$ne": voterEmail},
	}
	update := bson.M{
		"$push": bson.M{"votes": models.Vote{VoterEmail: voterEmail, VotedAt: votedAt}},
		"$inc":  bson.M{"vote_count": 1},
	}

	res, err := ds.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to add vote to drawing %s: %w", drawingID, err)
	}
	if res.MatchedCount == 0 {
		count, err := ds.collection.CountDocuments(ctx, bson.M{"_id": drawingID})
		if err != nil {
			return fmt.Errorf("failed to check drawing %s after vote miss: %w", drawingID, err)
		}
		if count > 0 {
			return ErrDuplicateVote
		}
		return ErrDrawingNotFound
	}
	return nil
}

// ListSorted returns up to limit drawings in the requested order,
// optionally restricted to public ones.
func (ds *DrawingStore) ListSorted(ctx context.Context, sort DrawingSort, publicOnly bool, limit int64) ([]models.Drawing, error) {
	filter := bson.M{}
	if publicOnly {
		filter["is_public"] = true
	}

	var sortDoc bson.D
	switch sort {
	case SortByVotes:
		sortDoc = bson.D{{Key: "vote_count", Value: -1}, {Key: "created_at", Value: -1}}
	default:
		sortDoc = bson.D{{Key: "created_at", Value: -1}}
	}

	opts := options.Find().SetSort(sortDoc).SetLimit(limit)
	cursor, err := ds.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list drawings: %w", err)
	}
	defer cursor.Close(ctx)

	var drawings []models.Drawing
	if err = cursor.All(ctx, &drawings); err != nil {
		return nil, fmt.Errorf("failed to decode drawing listing: %w", err)
	}
	return drawings, nil
}

// FindByIDs returns the drawings whose id is in ids, newest first, capped
// at limit. Ids without a matching document are simply absent from the
// result; the team back-reference list is allowed to be stale.
func (ds *DrawingStore) FindByIDs(ctx context.Context, ids []string, limit int64) ([]models.Drawing, error) {
	if len(ids) == 0 {
		return []models.Drawing{}, nil
	}

	filter := bson.M{"_id": bson.M{"$in": ids}}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := ds.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find drawings by ids: %w", err)
	}
	defer cursor.Close(ctx)

	var drawings []models.Drawing
	if err = cursor.All(ctx, &drawings); err != nil {
		return nil, fmt.Errorf("failed to decode drawings by ids: %w", err)
	}
	return drawings, nil
}
