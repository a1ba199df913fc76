package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "options", "list", "files", "edit"
}

// Bindings contains every key binding of the player.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionSwitchView, []string{"tab"}, "Switch view", "global"},
	{ActionOpenFolder, []string{"f"}, "Open folder", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},
	{ActionNextTrack, []string{"n"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"p"}, "Previous track", "playback"},
	{ActionSeekForward, []string{"right"}, "Seek +5s", "playback"},
	{ActionSeekBack, []string{"left"}, "Seek -5s", "playback"},
	{ActionCycleMode, []string{"m"}, "Cycle play mode", "playback"},

	// Options
	{ActionToggleStealth, []string{"x"}, "Toggle stealth", "options"},
	{ActionTogglePrivacy, []string{"h"}, "Toggle name privacy", "options"},
	{ActionToggleHeadset, []string{"o"}, "Toggle headset only", "options"},

	// Lists
	{ActionMoveUp, []string{"k", "up"}, "Move up", "list"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "list"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "list"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "list"},
	{ActionSelect, []string{"enter"}, "Play from here", "list"},

	// File list
	{ActionEnqueue, []string{"e"}, "Add to queue", "files"},
	{ActionAddToPlaylist, []string{"a"}, "Add to playlist", "files"},

	// Queue and playlist editing
	{ActionDelete, []string{"d", "delete"}, "Remove", "edit"},
	{ActionMoveItemUp, []string{"K"}, "Move item up", "edit"},
	{ActionMoveItemDown, []string{"J"}, "Move item down", "edit"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
