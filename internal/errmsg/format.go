// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/llehouerou/hush/internal/playback"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playback operations
	OpPlaybackStart  Op = "start playback"
	OpPlaybackResume Op = "resume playback"
	OpPlaybackSkip   Op = "skip track"
	OpPlaybackSeek   Op = "seek"

	// Queue operations
	OpQueueAdd    Op = "add to queue"
	OpQueueRemove Op = "remove from queue"
	OpQueueMove   Op = "move queue item"

	// Playlist operations
	OpPlaylistAdd    Op = "add to playlist"
	OpPlaylistRemove Op = "remove from playlist"
	OpPlaylistMove   Op = "move playlist item"

	// File operations
	OpFolderLoad Op = "load folder"

	// Settings
	OpSettingsLoad Op = "load settings"
	OpSettingsSave Op = "save settings"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Advisory returns the notice for conditions that are reported but are
// not failures, or "" when err is not one of them.
func Advisory(err error) string {
	switch {
	case errors.Is(err, playback.ErrQueueExhausted):
		return "End of queue"
	case errors.Is(err, playback.ErrActiveTrackRemoved):
		return "Playing track removed from queue"
	case errors.Is(err, playback.ErrNoActiveTrack):
		return "Nothing to play"
	default:
		return ""
	}
}

// FormatEvent renders a session error event. With hideNames set, track
// paths are left out of the message and only the root cause is shown.
func FormatEvent(e playback.ErrorEvent, hideNames bool) string {
	if e.Err == nil {
		return ""
	}
	if msg := Advisory(e.Err); msg != "" {
		return msg
	}
	op := opForEvent(e.Operation)
	if hideNames {
		return Format(op, errors.UnwrapAll(e.Err))
	}
	return Format(op, e.Err)
}

func opForEvent(operation string) Op {
	switch operation {
	case "play", "advance":
		return OpPlaybackStart
	case "resume":
		return OpPlaybackResume
	case "remove":
		return OpQueueRemove
	default:
		return Op(operation)
	}
}
