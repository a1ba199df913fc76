package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hush/internal/playback"
	"github.com/llehouerou/hush/internal/playlist"
)

// PlaybackMessage is implemented by messages coming from the session.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// PollMsg carries a poller snapshot. Refresh is set when the active track
// changed since the previous one.
type PollMsg struct {
	Snapshot playback.Snapshot
	Refresh  bool
}

func (PollMsg) playbackMessage() {}

// ServiceStateChangedMsg is sent when the playback state changes.
type ServiceStateChangedMsg playback.StateChange

func (ServiceStateChangedMsg) playbackMessage() {}

// ServiceTrackChangedMsg is sent when the active track changes.
type ServiceTrackChangedMsg playback.TrackChange

func (ServiceTrackChangedMsg) playbackMessage() {}

// ServiceQueueChangedMsg is sent when the queue contents or index change.
type ServiceQueueChangedMsg playback.QueueChange

func (ServiceQueueChangedMsg) playbackMessage() {}

// ServiceModeChangedMsg is sent when the play mode or stealth changes.
type ServiceModeChangedMsg playback.ModeChange

func (ServiceModeChangedMsg) playbackMessage() {}

// ServicePositionChangedMsg is sent after a seek.
type ServicePositionChangedMsg playback.PositionChange

func (ServicePositionChangedMsg) playbackMessage() {}

// ServiceErrorMsg is sent when the session reports a failure or an
// advisory condition.
type ServiceErrorMsg playback.ErrorEvent

func (ServiceErrorMsg) playbackMessage() {}

// ServiceClosedMsg is sent when the session is closed.
type ServiceClosedMsg struct{}

func (ServiceClosedMsg) playbackMessage() {}

// FolderLoadedMsg is sent when a folder listing completes.
type FolderLoadedMsg struct {
	Dir    string
	Tracks []playlist.Track
	Err    error
}
