package playback

import "github.com/cockroachdb/errors"

// Errors reported by the session. None of them is fatal: the session is
// always left in a defined state.
var (
	ErrEngineLoadFailed   = errors.New("engine failed to load track")
	ErrQueueExhausted     = errors.New("queue exhausted")
	ErrActiveTrackRemoved = errors.New("active track removed from queue")
	ErrNoActiveTrack      = errors.New("no active track")
	ErrInvalidIndex       = errors.New("queue index out of range")
	ErrSessionClosed      = errors.New("session closed")
)
