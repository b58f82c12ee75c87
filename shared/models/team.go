// shared/models/team.go
package models

import "time"

// Team groups drawings under a creator-owned name. DrawingIDs is a weak
// back-reference list maintained best-effort when drawings are created;
// it holds each drawing id at most once and never implies ownership.
type Team struct {
	ID           string    `bson:"_id" json:"id"`
	TeamName     string    `bson:"team_name" json:"teamName"`
	CreatorEmail string    `bson:"creator_email" json:"creatorEmail"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	DrawingIDs   []string  `bson:"drawing_ids" json:"drawingIds"`
}
