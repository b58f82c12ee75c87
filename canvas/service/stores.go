// canvas/service/stores.go
package service

import (
	"context"
	"time"

	"github.com/walkcanvas/go-services/canvas/store"
	"github.com/walkcanvas/go-services/shared/models"
)

// The services depend on these narrow store interfaces rather than the
// concrete MongoDB stores, so the business rules can be exercised against
// in-memory fakes. The canvas/store types satisfy them.

// DistanceStore is the persistence surface of the distance ledger.
type DistanceStore interface {
	GetByEmail(ctx context.Context, email string) (*models.DistanceRecord, error)
	Upsert(ctx context.Context, record *models.DistanceRecord) error
	TopByDistance(ctx context.Context, limit int64) ([]models.DistanceRecord, error)
}

// DrawingStore is the persistence surface of the drawing store.
type DrawingStore interface {
	Insert(ctx context.Context, drawing *models.Drawing) error
	AddVote(ctx context.Context, drawingID, voterEmail string, votedAt time.Time) error
	ListSorted(ctx context.Context, sort store.DrawingSort, publicOnly bool, limit int64) ([]models.Drawing, error)
	FindByIDs(ctx context.Context, ids []string, limit int64) ([]models.Drawing, error)
}

// TeamStore is the persistence surface of the team registry.
type TeamStore interface {
	Insert(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, teamID string) (*models.Team, error)
	ListByCreator(ctx context.Context, creatorEmail string, limit int64) ([]models.Team, error)
	AddDrawingID(ctx context.Context, teamID, drawingID string) error
}
