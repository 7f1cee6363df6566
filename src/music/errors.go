package music

import "errors"

// Error kinds returned by the library core. Handlers translate these to
// transport status codes with errors.Is; the core never retries internally.
var (
	// ErrValidation indicates malformed input to an add or update operation.
	ErrValidation = errors.New("invalid song data")
	// ErrNotFound indicates an operation referenced an id absent from the catalog.
	ErrNotFound = errors.New("song not found")
	// ErrEmptyLibrary indicates a playback operation was attempted with zero songs.
	ErrEmptyLibrary = errors.New("library is empty")
	// ErrNoHistory indicates a previous() call with an exhausted history stack.
	ErrNoHistory = errors.New("no playback history")
)
