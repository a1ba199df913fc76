package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hush/internal/playlist"
)

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// WatchServiceEvents returns a command that waits for the next session
// event. Handlers re-arm it after each message.
func (m Model) WatchServiceEvents() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg(e)
		case e := <-sub.TrackChanged:
			return ServiceTrackChangedMsg(e)
		case e := <-sub.QueueChanged:
			return ServiceQueueChangedMsg(e)
		case e := <-sub.ModeChanged:
			return ServiceModeChangedMsg(e)
		case e := <-sub.PositionChanged:
			return ServicePositionChangedMsg(e)
		case e := <-sub.Error:
			return ServiceErrorMsg(e)
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// WatchTicks returns a command that waits for the next poller snapshot.
func (m Model) WatchTicks() tea.Cmd {
	if m.ticks == nil {
		return nil
	}
	return waitForChannel(m.ticks.ch, func(msg PollMsg, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return msg
	})
}

// LoadFolderCmd lists the playable files of dir.
func LoadFolderCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		tracks, err := playlist.CollectFromDir(dir)
		return FolderLoadedMsg{Dir: dir, Tracks: tracks, Err: err}
	}
}
