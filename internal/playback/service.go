package playback

import (
	"time"

	"github.com/llehouerou/hush/internal/playlist"
)

// Service defines the playback session contract used by the TUI and the
// MPRIS adapter.
type Service interface {
	// Playback control
	Play(track playlist.Track) error
	PlayFrom(tracks []playlist.Track, index int) error
	PlayIndex(index int) error
	Pause() error
	Resume() error
	Toggle() error
	Stop() error
	Seek(position time.Duration) error
	SeekBy(delta time.Duration) error
	SkipNext() error
	SkipPrevious() error

	// Modes
	SetStealth(enabled bool) error
	SetPlayMode(mode playlist.PlayMode) error
	CycleMode() (playlist.PlayMode, error)

	// Queue manipulation
	SetQueue(tracks []playlist.Track, startIndex int) error
	Enqueue(tracks ...playlist.Track) error
	RemoveFromQueue(index int) error
	MoveInQueue(from, to int) error

	// Reads, safe from any goroutine
	Snapshot() Snapshot
	QueueTracks() []playlist.Track
	QueueIndex() int

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
