// internal/playback/state.go
package playback

import (
	"time"

	"github.com/llehouerou/hush/internal/playlist"
)

// State represents the playback state.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}

// UnknownDuration marks a duration that must not be shown or used for
// seeking, either because the engine cannot tell or because stealth hides it.
const UnknownDuration time.Duration = -1

// Snapshot is an immutable copy of the session, safe to read from any
// goroutine.
type Snapshot struct {
	State       State
	ActiveTrack *playlist.Track // nil when nothing is loaded
	Position    time.Duration
	Duration    time.Duration // UnknownDuration under stealth
	Stealth     bool
	QueueIndex  int
	Mode        playlist.PlayMode
}

// ActiveID returns the active track's ID, or "" when nothing is loaded.
func (s Snapshot) ActiveID() string {
	if s.ActiveTrack == nil {
		return ""
	}
	return s.ActiveTrack.ID
}

// DurationKnown reports whether Duration can be displayed and seeked into.
func (s Snapshot) DurationKnown() bool {
	return s.Duration >= 0
}
