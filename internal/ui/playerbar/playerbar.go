// Package playerbar renders the now-playing bar at the bottom of the TUI.
package playerbar

import (
	"strings"

	"github.com/llehouerou/hush/internal/playback"
	"github.com/llehouerou/hush/internal/playlist"
	"github.com/llehouerou/hush/internal/presenter"
	"github.com/llehouerou/hush/internal/ui/render"
	"github.com/llehouerou/hush/internal/ui/styles"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	separator   = "   "
)

// Height is the number of rows of the bar: top border, content, bottom
// border.
const Height = 3

// State holds everything needed to render the player bar.
type State struct {
	Presentation presenter.Presentation
	Mode         playlist.PlayMode
}

// Render returns the player bar for the given width, or "" when playback
// is stopped. Everything shown comes from the presentation, so a masked
// presentation renders the mask and no timing.
func Render(s State, width int) string {
	p := s.Presentation
	if !p.State.IsActive() {
		return ""
	}
	innerWidth := max(width-6, 0) // border and padding

	status := playSymbol
	if p.State == playback.StatePaused {
		status = pauseSymbol
	}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = "Unknown Track"
	}
	info := title
	if artist := strings.TrimSpace(p.Artist); artist != "" {
		info += " · " + artist
	}

	right := status + "  " + ModeLabel(s.Mode)
	if p.Duration != presenter.Unknown {
		bar := RenderProgressBar(p.Position, p.Duration, innerWidth/3)
		right = bar + separator + right
	} else {
		right = presenter.FormatTime(p.Position) + separator + right
	}

	t := styles.T().S()
	left := t.Title.Render(render.Sanitize(info))
	content := render.Row(left, right, innerWidth)
	return t.Panel.Padding(0, 2).Width(max(width-2, 0)).Render(content)
}

// ModeLabel names a play mode for display.
func ModeLabel(m playlist.PlayMode) string {
	switch m {
	case playlist.PlayModeRepeatOne:
		return "repeat one"
	case playlist.PlayModeRepeatAll:
		return "repeat all"
	case playlist.PlayModeNone:
		return "no repeat"
	}
	return "no repeat"
}
