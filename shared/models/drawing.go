// shared/models/drawing.go
package models

import "time"

// LatLng is a single point of a drawing's walked path.
type LatLng struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Vote records a single user's vote on a drawing. A drawing holds at most
// one Vote per distinct voter email.
type Vote struct {
	VoterEmail string    `bson:"voter_email" json:"voterEmail"`
	VotedAt    time.Time `bson:"voted_at" json:"votedAt"`
}

// Drawing represents one submitted drawing: the coordinate path walked by
// the owner plus visibility, team attachments and votes. VoteCount must
// always equal len(Votes); both are only ever mutated together by the
// atomic vote update.
type Drawing struct {
	ID          string    `bson:"_id" json:"id"`
	Email       string    `bson:"email" json:"-"` // owner identity, never serialized to clients
	Username    string    `bson:"username" json:"username"`
	Coordinates []LatLng  `bson:"coordinates" json:"coordinates"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	IsPublic    bool      `bson:"is_public" json:"isPublic"`
	TeamIDs     []string  `bson:"team_ids" json:"teamIds"`
	Votes       []Vote    `bson:"votes" json:"votes"`
	VoteCount   int64     `bson:"vote_count" json:"voteCount"`
}

// DrawingView is the listing projection of a Drawing: everything a client
// may see, minus the owner email and the raw vote entries.
type DrawingView struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Coordinates []LatLng  `json:"coordinates"`
	CreatedAt   time.Time `json:"createdAt"`
	VoteCount   int64     `json:"voteCount"`
	IsPublic    bool      `json:"isPublic"`
}

// View returns the client-facing projection of the drawing.
func (d *Drawing) View() DrawingView {
	return DrawingView{
		ID:          d.ID,
		Username:    d.Username,
		Coordinates: d.Coordinates,
		CreatedAt:   d.CreatedAt,
		VoteCount:   d.VoteCount,
		IsPublic:    d.IsPublic,
	}
}
