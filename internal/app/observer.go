package app

import (
	"github.com/llehouerou/hush/internal/playback"
)

// TickObserver is a poller observer that hands snapshots to the model.
// Only the latest snapshot is kept; a slow UI skips ticks instead of
// stalling the poller.
type TickObserver struct {
	ch chan PollMsg
}

// NewTickObserver creates an observer with an empty mailbox.
func NewTickObserver() *TickObserver {
	return &TickObserver{ch: make(chan PollMsg, 1)}
}

// Refresh implements poller.Observer.
func (o *TickObserver) Refresh(snap playback.Snapshot) {
	o.send(PollMsg{Snapshot: snap, Refresh: true})
}

// Tick implements poller.Observer.
func (o *TickObserver) Tick(snap playback.Snapshot) {
	o.send(PollMsg{Snapshot: snap})
}

func (o *TickObserver) send(msg PollMsg) {
	for {
		select {
		case o.ch <- msg:
			return
		default:
		}
		// Mailbox full: drop the stale snapshot, keeping its refresh flag.
		select {
		case old := <-o.ch:
			msg.Refresh = msg.Refresh || old.Refresh
		default:
		}
	}
}
