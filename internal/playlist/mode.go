package playlist

import "strings"

// PlayMode is the repeat policy applied when the queue advances.
type PlayMode int

const (
	PlayModeNone PlayMode = iota
	PlayModeRepeatOne
	PlayModeRepeatAll
)

// String returns the mode name.
func (m PlayMode) String() string {
	switch m {
	case PlayModeNone:
		return "None"
	case PlayModeRepeatOne:
		return "RepeatOne"
	case PlayModeRepeatAll:
		return "RepeatAll"
	default:
		return "Unknown"
	}
}

// Next cycles None -> RepeatOne -> RepeatAll -> None.
func (m PlayMode) Next() PlayMode {
	switch m {
	case PlayModeNone:
		return PlayModeRepeatOne
	case PlayModeRepeatOne:
		return PlayModeRepeatAll
	default:
		return PlayModeNone
	}
}

// Valid reports whether m is one of the known modes.
func (m PlayMode) Valid() bool {
	return m >= PlayModeNone && m <= PlayModeRepeatAll
}

// ParsePlayMode converts a mode name (case-insensitive) back to a PlayMode.
// Unknown names map to PlayModeNone.
func ParsePlayMode(s string) PlayMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "repeatone", "one":
		return PlayModeRepeatOne
	case "repeatall", "all":
		return PlayModeRepeatAll
	default:
		return PlayModeNone
	}
}
