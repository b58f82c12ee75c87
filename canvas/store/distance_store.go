// canvas/store/distance_store.go
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/walkcanvas/go-services/shared/models"
)

// DistanceStore represents the MongoDB data store for cumulative distance
// records. One document per user identity, keyed by email.
type DistanceStore struct {
	collection *mongo.Collection
}

// NewDistanceStore creates a new DistanceStore instance.
func NewDistanceStore(collection *mongo.Collection) *DistanceStore {
	return &DistanceStore{
		collection: collection,
	}
}

// GetByEmail retrieves the distance record for an identity.
// Returns ErrRecordNotFound if no record exists yet.
func (ds *DistanceStore) GetByEmail(ctx context.Context, email string) (*models.DistanceRecord, error) {
	var record models.DistanceRecord
	filter := bson.M{"_id": email}
	err := ds.collection.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get distance record for %s: %w", email, err)
	}
	return &record, nil
}

// Upsert writes the full record for an identity, creating it if absent.
func (ds *DistanceStore) Upsert(ctx context.Context, record *models.DistanceRecord) error {
	filter := bson.M{"_id": record.Email}
	update := bson.M{"$set": bson.M{
		"username":     record.Username,
		"distance":     record.Distance,
		"last_updated": record.LastUpdated,
	}}
	opts := options.Update().SetUpsert(true)

	if _, err := ds.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert distance record for %s: %w", record.Email, err)
	}
	return nil
}

// TopByDistance returns up to limit records sorted by distance descending.
func (ds *DistanceStore) TopByDistance(ctx context.Context, limit int64) ([]models.DistanceRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "distance", Value: -1}}).
		SetLimit(limit)

	cursor, err := ds.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find top distance records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.DistanceRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode top distance records: %w", err)
	}
	return records, nil
}
