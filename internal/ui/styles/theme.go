// Package styles holds the color palette and lipgloss styles of the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette of the application.
type Theme struct {
	Primary   lipgloss.Color // focused items, playing track
	Secondary lipgloss.Color // progress end, option highlights

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built styles for common UI patterns.
type Styles struct {
	Base      lipgloss.Style
	Muted     lipgloss.Style
	Subtle    lipgloss.Style
	Title     lipgloss.Style
	Playing   lipgloss.Style // track currently loaded
	Cursor    lipgloss.Style
	Tab       lipgloss.Style
	TabActive lipgloss.Style
	OptionOn  lipgloss.Style
	OptionOff lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Panel     lipgloss.Style
	PanelFoc  lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#7dd3fc"),
	Secondary: lipgloss.Color("#c4b5fd"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#7dd3fc"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	panel := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Playing: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Tab:       lipgloss.NewStyle().Foreground(t.FgMuted).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Padding(0, 1).Underline(true),
		OptionOn:  lipgloss.NewStyle().Foreground(t.Secondary),
		OptionOff: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Error:     lipgloss.NewStyle().Foreground(t.Error),
		Warning:   lipgloss.NewStyle().Foreground(t.Warning),
		Panel:     panel,
		PanelFoc:  panel.BorderForeground(t.BorderFocus),
	}
}

// PanelStyle returns the bordered panel style for the focus state.
func (s *Styles) PanelStyle(focused bool) lipgloss.Style {
	if focused {
		return s.PanelFoc
	}
	return s.Panel
}
