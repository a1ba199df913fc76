// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionSwitchView Action = "switch_view"
	ActionOpenFolder Action = "open_folder"
	ActionHelp       Action = "help"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionStop        Action = "stop"
	ActionNextTrack   Action = "next_track"
	ActionPrevTrack   Action = "prev_track"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
	ActionCycleMode   Action = "cycle_mode"

	// Option toggles, persisted
	ActionToggleStealth Action = "toggle_stealth"
	ActionTogglePrivacy Action = "toggle_privacy"
	ActionToggleHeadset Action = "toggle_headset"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// Selection/activation actions
	ActionSelect        Action = "select"          // enter - play from here
	ActionEnqueue       Action = "enqueue"         // e - append to queue
	ActionAddToPlaylist Action = "add_to_playlist" // a

	// Generic contextual actions
	ActionDelete       Action = "delete"         // d/delete - context determines what
	ActionMoveItemUp   Action = "move_item_up"   // K
	ActionMoveItemDown Action = "move_item_down" // J
)
