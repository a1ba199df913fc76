// internal/player/interface.go
package player

import "time"

// Interface is the engine contract the playback session drives.
//
// Load prepares a URI and reports its duration; the engine is left Paused
// at position 0 until Start. Finished receives one value each time a
// started track plays to its end.
type Interface interface {
	Load(uri string) (time.Duration, error)
	Start()
	Pause()
	Stop()
	SeekTo(position time.Duration)
	State() State
	Position() time.Duration
	Duration() time.Duration
	Finished() <-chan struct{}
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
