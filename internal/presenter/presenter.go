// Package presenter maps a playback snapshot to what the outside world is
// allowed to see. Under stealth the real title, timing and transport
// capabilities are replaced by fixed masks.
package presenter

import (
	"fmt"
	"time"

	"github.com/llehouerou/hush/internal/playback"
	"github.com/llehouerou/hush/internal/playlist"
)

// Action is a transport capability advertised to external controllers.
type Action uint8

const (
	ActionPlay Action = 1 << iota
	ActionPause
	ActionSeek
	ActionSkipNext
	ActionSkipPrevious
)

// AllActions is the capability set advertised outside stealth.
const AllActions = ActionPlay | ActionPause | ActionSeek | ActionSkipNext | ActionSkipPrevious

// Has reports whether every capability in other is in a.
func (a Action) Has(other Action) bool {
	return a&other == other
}

// Unknown marks a duration or position that must not be displayed.
const Unknown = playback.UnknownDuration

// Masks are the strings shown instead of track metadata under stealth.
type Masks struct {
	Title  string
	Artist string
}

// Presentation is the externally visible view of the session.
type Presentation struct {
	Title    string
	Artist   string
	Duration time.Duration // Unknown when hidden
	Position time.Duration // Unknown when hidden
	Actions  Action
	State    playback.State
}

// Masked reports whether the presentation hides the real track.
func (p Presentation) Masked() bool {
	return p.Actions == 0
}

// Present computes the presentation of snap. It never touches playback.
func Present(snap playback.Snapshot, stealth bool, masks Masks) Presentation {
	if stealth {
		return Presentation{
			Title:    masks.Title,
			Artist:   masks.Artist,
			Duration: Unknown,
			Position: Unknown,
			State:    snap.State,
		}
	}

	p := Presentation{
		Duration: snap.Duration,
		Position: snap.Position,
		Actions:  AllActions,
		State:    snap.State,
	}
	if t := snap.ActiveTrack; t != nil {
		p.Title = t.DisplayName
		p.Artist = t.Artist
	}
	if !snap.State.IsActive() {
		p.Position = 0
	}
	return p
}

// ListName renders a track for list views. With privacy on, names are
// replaced by their 1-based position, zero padded.
func ListName(t playlist.Track, index int, privacy bool) string {
	if privacy {
		return fmt.Sprintf("%04d", index+1)
	}
	return t.DisplayName
}

// FormatTime renders d as m:ss, or --:-- when unknown.
func FormatTime(d time.Duration) string {
	if d < 0 {
		return "--:--"
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
