package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/hush/internal/keymap"
	"github.com/llehouerou/hush/internal/playlist"
	"github.com/llehouerou/hush/internal/presenter"
	"github.com/llehouerou/hush/internal/ui/playerbar"
	"github.com/llehouerou/hush/internal/ui/render"
	"github.com/llehouerou/hush/internal/ui/styles"
)

const (
	headerHeight = 1
	footerHeight = 2 // options row + status/help row
	panelBorder  = 2
)

// listHeight returns the rows available to the list inside its panel.
func (m Model) listHeight() int {
	h := m.height - headerHeight - footerHeight - panelBorder
	if m.snap.State.IsActive() {
		h -= playerbar.Height
	}
	if m.showHelp {
		h -= m.fullHelpHeight() - 1
	}
	return h
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	sections := []string{m.renderHeader(), m.renderList()}
	if bar := playerbar.Render(playerbar.State{
		Presentation: presenter.Present(m.snap, m.snap.Stealth, m.masks),
		Mode:         m.snap.Mode,
	}, m.width); bar != "" {
		sections = append(sections, bar)
	}
	sections = append(sections, m.renderOptions(), m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	s := styles.T().S()
	tabs := make([]string, 0, len(viewNames))
	for v := ViewFiles; v <= ViewQueue; v++ {
		style := s.Tab
		if v == m.view {
			style = s.TabActive
		}
		tabs = append(tabs, style.Render(v.String()))
	}

	folder := ""
	if m.view == ViewFiles && !m.hideNames() {
		folder = s.Muted.Render(render.Sanitize(m.folder))
	}
	return render.Row(strings.Join(tabs, ""), folder, m.width)
}

func (m Model) renderList() string {
	s := styles.T().S()
	l := m.current()
	innerWidth := max(m.width-panelBorder, 0)
	height := max(m.listHeight(), 0)

	rows := make([]string, 0, height)
	start, end := l.VisibleRange()
	items := l.Items()
	for i := start; i < end; i++ {
		rows = append(rows, m.renderRow(items[i], i, i == l.SelectedIndex(), innerWidth))
	}
	if len(rows) == 0 && height > 0 {
		rows = append(rows, s.Subtle.Render(render.Fit(m.emptyText(), innerWidth)))
	}
	for len(rows) < height {
		rows = append(rows, strings.Repeat(" ", innerWidth))
	}

	return s.PanelStyle(true).Width(innerWidth).Render(strings.Join(rows, "\n"))
}

func (m Model) renderRow(t playlist.Track, index int, selected bool, width int) string {
	s := styles.T().S()
	playing := m.isPlaying(t, index)

	marker := "  "
	if playing {
		marker = "▶ "
	}
	line := render.Fit(marker+presenter.ListName(t, index, m.settings.Privacy), width)

	switch {
	case selected:
		return s.Cursor.Render(line)
	case playing:
		return s.Playing.Render(line)
	default:
		return s.Base.Render(line)
	}
}

// isPlaying reports whether row index of the current view holds the
// active track. In the queue the position decides, elsewhere the ID.
func (m Model) isPlaying(t playlist.Track, index int) bool {
	if !m.snap.State.IsActive() {
		return false
	}
	if m.view == ViewQueue {
		return index == m.snap.QueueIndex
	}
	return t.ID == m.snap.ActiveID()
}

func (m Model) emptyText() string {
	switch m.view {
	case ViewPlaylist:
		return "Playlist is empty, press a on a file to add it"
	case ViewQueue:
		return "Queue is empty"
	case ViewFiles:
		return "No audio files here, press f to open another folder"
	}
	return ""
}

func (m Model) renderOptions() string {
	s := styles.T().S()
	opt := func(name string, on bool) string {
		if on {
			return s.OptionOn.Render(name + " on")
		}
		return s.OptionOff.Render(name + " off")
	}

	left := strings.Join([]string{
		s.OptionOn.Render(playerbar.ModeLabel(m.snap.Mode)),
		opt("stealth", m.snap.Stealth),
		opt("privacy", m.settings.Privacy),
		opt("headset only", m.settings.HeadsetOnly),
	}, s.Subtle.Render(" · "))

	right := s.Muted.Render(
		"queue " + humanize.Comma(int64(m.queue.Len())) +
			" · playlist " + humanize.Comma(int64(m.playlist.Len())) +
			" · files " + humanize.Comma(int64(m.files.Len())),
	)
	return render.Row(left, right, m.width)
}

func (m Model) renderFooter() string {
	s := styles.T().S()
	switch {
	case m.prompting:
		return m.prompt.View()
	case m.showHelp:
		return m.help.FullHelpView(m.fullHelp())
	case m.status != "" && m.statusErr:
		return s.Error.Render(render.Truncate(m.status, m.width))
	case m.status != "":
		return s.Warning.Render(render.Truncate(m.status, m.width))
	}
	return m.help.ShortHelpView(m.keys.Help(
		keymap.ActionSelect,
		keymap.ActionPlayPause,
		keymap.ActionSwitchView,
		keymap.ActionToggleStealth,
		keymap.ActionHelp,
		keymap.ActionQuit,
	))
}

func (m Model) fullHelp() [][]key.Binding {
	return [][]key.Binding{
		m.keys.HelpByContext("global"),
		m.keys.HelpByContext("playback"),
		m.keys.HelpByContext("options"),
		append(m.keys.HelpByContext("list"), m.keys.HelpByContext("files")...),
		m.keys.HelpByContext("edit"),
	}
}

// fullHelpHeight is the number of rows of the full help: its longest
// column.
func (m Model) fullHelpHeight() int {
	rows := 0
	for _, col := range m.fullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}
