// shared/models/distance.go
package models

import "time"

// DefaultUsername is the display name used when neither the request nor the
// stored record carries one.
const DefaultUsername = "Anonymous"

// DistanceRecord represents the cumulative walked distance for one user
// identity, stored persistently in MongoDB. The email doubles as the
// document key, so there is exactly one record per identity.
type DistanceRecord struct {
	Email       string    `bson:"_id" json:"email"`
	Username    string    `bson:"username" json:"username"`
	Distance    float64   `bson:"distance" json:"distance"`
	LastUpdated time.Time `bson:"last_updated" json:"lastUpdated"`
}

// LeaderboardEntry is the public projection of a DistanceRecord. The email
// is deliberately absent.
type LeaderboardEntry struct {
	Username string  `json:"username"`
	Distance float64 `json:"distance"`
}
