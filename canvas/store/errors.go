// canvas/store/errors.go
package store

import "errors"

// Sentinel errors returned by the stores so the service layer can map
// outcomes without inspecting driver errors.
var (
	ErrRecordNotFound  = errors.New("distance record not found")
	ErrDrawingNotFound = errors.New("drawing not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrDuplicateVote   = errors.New("voter has already voted on this drawing")
)
