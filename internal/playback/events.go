package playback

import (
	"time"

	"github.com/llehouerou/hush/internal/playlist"
)

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when playback starts on a track.
//
// Emitted by Play, PlayFrom, PlayIndex, SkipNext, SkipPrevious and by
// automatic advancement when a track finishes. Replaying the same track
// (RepeatOne) emits it too, with Previous equal to Current.
//
// Not emitted by Pause, Resume or Stop: those only produce StateChange.
type TrackChange struct {
	Previous      *playlist.Track
	Current       *playlist.Track
	PreviousIndex int
	Index         int
}

// QueueChange is emitted when the queue contents change.
type QueueChange struct {
	Tracks []playlist.Track
	Index  int
}

// ModeChange is emitted when the play mode or the stealth flag changes.
type ModeChange struct {
	Mode    playlist.PlayMode
	Stealth bool
}

// PositionChange is emitted when a seek occurs.
type PositionChange struct {
	Position time.Duration
}

// ErrorEvent is emitted when a command fails or an advisory condition
// occurs (queue exhausted, active track removed).
type ErrorEvent struct {
	Operation string // e.g., "play", "advance"
	Path      string // track ID if applicable
	Err       error
}
