// internal/player/state.go
package player

// State is the engine's resource state.
//
//	┌──────────┐      Load       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Paused  │ (loaded, position 0)
//	└──────────┘                 └──────────┘
//	     ▲                         │      ▲
//	     │ Stop             Start  │      │ Pause
//	     │                         ▼      │
//	     │                       ┌──────────┐
//	     └───────────────────────│  Playing │
//	                  Stop       └──────────┘
//
// Load always releases whatever was loaded before, so at most one decoded
// stream is open at a time. Start, Pause and SeekTo are no-ops when
// Stopped.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a stream is loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanStart returns true if the state allows starting output.
func (s State) CanStart() bool {
	return s == Paused
}
