package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/hush/internal/errmsg"
	"github.com/llehouerou/hush/internal/keymap"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if m.prompting {
			cmd = m.handlePromptKey(msg)
			break
		}
		cmd = m.handleKey(msg.String())
	case FolderLoadedMsg:
		m.handleFolderLoaded(msg)
	case PlaybackMessage:
		cmd = m.handlePlaybackMsg(msg)
	}
	m.layout()
	return m, cmd
}

// handleKey dispatches a key press to its action.
func (m *Model) handleKey(key string) tea.Cmd {
	action := m.keys.Resolve(key)
	if action == "" {
		return nil
	}
	m.clearStatus()

	switch action {
	case keymap.ActionQuit:
		return tea.Quit
	case keymap.ActionHelp:
		m.showHelp = !m.showHelp
	case keymap.ActionSwitchView:
		m.view = m.view.next()
	case keymap.ActionOpenFolder:
		return m.openPrompt()

	case keymap.ActionMoveUp:
		m.current().Move(-1)
	case keymap.ActionMoveDown:
		m.current().Move(1)
	case keymap.ActionJumpStart:
		m.current().JumpStart()
	case keymap.ActionJumpEnd:
		m.current().JumpEnd()

	case keymap.ActionSelect:
		m.handleSelect()
	case keymap.ActionEnqueue:
		m.handleEnqueue()
	case keymap.ActionAddToPlaylist:
		m.handleAddToPlaylist()
	case keymap.ActionDelete:
		m.handleDelete()
	case keymap.ActionMoveItemUp:
		m.handleMoveItem(-1)
	case keymap.ActionMoveItemDown:
		m.handleMoveItem(1)

	case keymap.ActionPlayPause, keymap.ActionStop, keymap.ActionNextTrack,
		keymap.ActionPrevTrack, keymap.ActionSeekForward, keymap.ActionSeekBack,
		keymap.ActionCycleMode:
		m.handlePlaybackKey(action)

	case keymap.ActionToggleStealth, keymap.ActionTogglePrivacy, keymap.ActionToggleHeadset:
		m.handleToggle(action)
	}
	return nil
}

// openPrompt shows the folder prompt filled with the current folder.
func (m *Model) openPrompt() tea.Cmd {
	m.prompting = true
	m.prompt.SetValue(m.folder)
	m.prompt.CursorEnd()
	return m.prompt.Focus()
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type { //nolint:exhaustive // Only enter and escape end the prompt
	case tea.KeyEsc:
		m.closePrompt()
		return nil
	case tea.KeyEnter:
		dir := strings.TrimSpace(m.prompt.Value())
		m.closePrompt()
		if dir == "" {
			return nil
		}
		return LoadFolderCmd(dir)
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
}

func (m *Model) handleFolderLoaded(msg FolderLoadedMsg) {
	if msg.Err != nil {
		zlog.Warn().Err(msg.Err).Str("dir", msg.Dir).Msg("loading folder failed")
		m.setError(errmsg.FormatWith(errmsg.OpFolderLoad, m.hiddenName(msg.Dir), msg.Err))
		return
	}
	changed := msg.Dir != m.folder
	m.folder = msg.Dir
	m.files.SetItems(msg.Tracks)
	m.files.JumpStart()
	zlog.Debug().Int("tracks", len(msg.Tracks)).Msg("folder loaded")

	if changed {
		m.settings.RootFolder = msg.Dir
		m.saveSettings()
	}
}

// hiddenName returns name, or "" when names are private.
func (m Model) hiddenName(name string) string {
	if m.hideNames() {
		return ""
	}
	return name
}

// hideNames reports whether track and folder names must stay off screen.
func (m Model) hideNames() bool {
	return m.settings.Privacy || m.snap.Stealth
}

// layout sizes the lists to the window.
func (m *Model) layout() {
	h := max(m.listHeight(), 0)
	m.files.SetHeight(h)
	m.plView.SetHeight(h)
	m.queue.SetHeight(h)
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}
