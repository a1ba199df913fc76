package app

import (
	"github.com/llehouerou/hush/internal/errmsg"
)

// handleSelect plays the item under the cursor. Files and playlist replace
// the queue with their contents; the queue view jumps within the queue.
func (m *Model) handleSelect() {
	l := m.current()
	if l.Len() == 0 {
		return
	}
	i := l.SelectedIndex()
	var err error
	switch m.view {
	case ViewQueue:
		err = m.service.PlayIndex(i)
	case ViewFiles, ViewPlaylist:
		err = m.service.PlayFrom(l.Items(), i)
	}
	m.report(errmsg.OpPlaybackStart, err)
	m.snap = m.service.Snapshot()
	m.queue.SetItems(m.service.QueueTracks())
	m.followActive()
}

func (m *Model) handleEnqueue() {
	if m.view == ViewQueue {
		return
	}
	t, ok := m.current().Selected()
	if !ok {
		return
	}
	if err := m.service.Enqueue(t); err != nil {
		m.report(errmsg.OpQueueAdd, err)
		return
	}
	m.queue.SetItems(m.service.QueueTracks())
	m.setStatus("Added to queue")
}

// handleAddToPlaylist adds the selected file or queue item to the playlist.
func (m *Model) handleAddToPlaylist() {
	if m.view == ViewPlaylist {
		return
	}
	t, ok := m.current().Selected()
	if !ok {
		return
	}
	if m.playlist.Add(t) == 0 {
		m.setStatus("Already in playlist")
		return
	}
	m.plView.SetItems(m.playlist.Tracks())
	m.setStatus("Added to playlist")
}

func (m *Model) handleDelete() {
	l := m.current()
	if l.Len() == 0 {
		return
	}
	i := l.SelectedIndex()
	switch m.view {
	case ViewQueue:
		err := m.service.RemoveFromQueue(i)
		m.report(errmsg.OpQueueRemove, err)
		m.queue.SetItems(m.service.QueueTracks())
		m.snap = m.service.Snapshot()
	case ViewPlaylist:
		if m.playlist.Remove(i) {
			m.plView.SetItems(m.playlist.Tracks())
		}
	case ViewFiles:
	}
}

// handleMoveItem moves the selected queue or playlist item by delta and
// keeps the cursor on it.
func (m *Model) handleMoveItem(delta int) {
	l := m.current()
	from := l.SelectedIndex()
	to := from + delta
	if l.Len() == 0 || to < 0 || to >= l.Len() {
		return
	}
	switch m.view {
	case ViewQueue:
		if err := m.service.MoveInQueue(from, to); err != nil {
			m.report(errmsg.OpQueueMove, err)
			return
		}
		m.queue.SetItems(m.service.QueueTracks())
	case ViewPlaylist:
		if !m.playlist.Move(from, to) {
			return
		}
		m.plView.SetItems(m.playlist.Tracks())
	case ViewFiles:
		return
	}
	l.Select(to)
	m.snap = m.service.Snapshot()
}
