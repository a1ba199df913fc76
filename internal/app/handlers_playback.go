package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/hush/internal/errmsg"
	"github.com/llehouerou/hush/internal/keymap"
	"github.com/llehouerou/hush/internal/playback"
)

const seekStep = 5 * time.Second

// handlePlaybackMsg routes session messages and re-arms the watcher that
// produced them.
func (m *Model) handlePlaybackMsg(msg PlaybackMessage) tea.Cmd {
	switch msg := msg.(type) {
	case PollMsg:
		m.snap = msg.Snapshot
		if msg.Refresh {
			m.followActive()
		}
		return m.WatchTicks()
	case ServiceClosedMsg:
		return nil
	case ServiceQueueChangedMsg:
		m.queue.SetItems(msg.Tracks)
	case ServiceTrackChangedMsg:
		m.snap = m.service.Snapshot()
		m.followActive()
	case ServiceErrorMsg:
		m.handleServiceError(playback.ErrorEvent(msg))
	case ServiceStateChangedMsg, ServiceModeChangedMsg, ServicePositionChangedMsg:
	}
	m.snap = m.service.Snapshot()
	return m.WatchServiceEvents()
}

// followActive moves the queue cursor to the active item.
func (m *Model) followActive() {
	if i := m.service.QueueIndex(); i >= 0 {
		m.queue.Select(i)
	}
}

func (m *Model) handleServiceError(e playback.ErrorEvent) {
	msg := errmsg.FormatEvent(e, m.hideNames())
	if msg == "" {
		return
	}
	if errmsg.Advisory(e.Err) != "" {
		m.setStatus(msg)
		return
	}
	m.setError(msg)
}

func (m *Model) handlePlaybackKey(action keymap.Action) {
	var err error
	op := errmsg.OpPlaybackStart
	switch action { //nolint:exhaustive // Only playback actions are routed here
	case keymap.ActionPlayPause:
		op = errmsg.OpPlaybackResume
		err = m.service.Toggle()
	case keymap.ActionStop:
		err = m.service.Stop()
	case keymap.ActionNextTrack:
		op = errmsg.OpPlaybackSkip
		err = m.service.SkipNext()
	case keymap.ActionPrevTrack:
		op = errmsg.OpPlaybackSkip
		err = m.service.SkipPrevious()
	case keymap.ActionSeekForward:
		op = errmsg.OpPlaybackSeek
		err = m.service.SeekBy(seekStep)
	case keymap.ActionSeekBack:
		op = errmsg.OpPlaybackSeek
		err = m.service.SeekBy(-seekStep)
	case keymap.ActionCycleMode:
		_, err = m.service.CycleMode()
		if err == nil {
			m.snap = m.service.Snapshot()
			m.saveSettings()
		}
	}
	m.report(op, err)
	m.snap = m.service.Snapshot()
}

// report shows a command error. Load failures are left to the error event
// the session emits for them.
func (m *Model) report(op errmsg.Op, err error) {
	if err == nil || errors.Is(err, playback.ErrEngineLoadFailed) {
		return
	}
	if msg := errmsg.Advisory(err); msg != "" {
		m.setStatus(msg)
		return
	}
	zlog.Warn().Err(err).Str("op", string(op)).Msg("command failed")
	if m.hideNames() {
		err = errors.UnwrapAll(err)
	}
	m.setError(errmsg.Format(op, err))
}

func (m *Model) handleToggle(action keymap.Action) {
	switch action { //nolint:exhaustive // Only option toggles are routed here
	case keymap.ActionToggleStealth:
		if err := m.service.SetStealth(!m.snap.Stealth); err != nil {
			m.report(errmsg.OpSettingsSave, err)
			return
		}
		m.snap = m.service.Snapshot()
	case keymap.ActionTogglePrivacy:
		m.settings.Privacy = !m.settings.Privacy
	case keymap.ActionToggleHeadset:
		m.settings.HeadsetOnly = !m.settings.HeadsetOnly
	}
	m.saveSettings()
}
