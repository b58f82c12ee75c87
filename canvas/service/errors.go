// canvas/service/errors.go
package service

import "fmt"

// Custom errors for clear communication to the API layer.
var (
	ErrDrawingNotFound     = fmt.Errorf("drawing not found")
	ErrDuplicateVote       = fmt.Errorf("voter has already voted on this drawing")
	ErrTeamNotAccessible   = fmt.Errorf("team not found or not accessible")
	ErrInvalidSortKey      = fmt.Errorf("sortBy must be \"votes\" or \"date\"")
	ErrEmptyPrompt         = fmt.Errorf("prompt must be a non-empty string")
	ErrUpstreamUnavailable = fmt.Errorf("generative-text upstream unavailable")
)
