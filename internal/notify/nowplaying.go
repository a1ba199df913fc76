package notify

import (
	"sync"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/hush/internal/playback"
	"github.com/llehouerou/hush/internal/presenter"
)

// Status lines used as the notification body.
const (
	statusPlaying = "Playing"
	statusPaused  = "Paused"
)

const desktopEntry = "hush"

// NowPlayingOptions configures the now-playing notification.
type NowPlayingOptions struct {
	AppName        string
	StealthAppName string
	Masks          presenter.Masks
	Timeout        time.Duration
}

// NowPlaying keeps a single desktop notification in sync with the session.
// It is a poller observer: every snapshot is run through the presenter, so
// under stealth only the masks are ever sent. A notification is only
// re-sent when its visible content changes, and it is closed when playback
// stops.
type NowPlaying struct {
	notifier Notifier
	opts     NowPlayingOptions

	mu     sync.Mutex
	id     uint32
	last   Notification
	closed bool
}

// NewNowPlaying creates a now-playing notification over notifier.
func NewNowPlaying(notifier Notifier, opts NowPlayingOptions) *NowPlaying {
	if opts.AppName == "" {
		opts.AppName = "Hush"
	}
	if opts.StealthAppName == "" {
		opts.StealthAppName = opts.AppName
	}
	return &NowPlaying{notifier: notifier, opts: opts}
}

// Refresh implements poller.Observer.
func (n *NowPlaying) Refresh(snap playback.Snapshot) {
	n.update(snap)
}

// Tick implements poller.Observer.
func (n *NowPlaying) Tick(snap playback.Snapshot) {
	n.update(snap)
}

func (n *NowPlaying) update(snap playback.Snapshot) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	if !snap.State.IsActive() {
		n.closeLocked()
		return
	}

	notif := n.build(presenter.Present(snap, snap.Stealth, n.opts.Masks))
	if n.id != 0 && notif == n.last {
		return
	}

	notif.ReplacesID = n.id
	id, err := n.notifier.Notify(notif)
	if err != nil {
		zlog.Debug().Err(err).Msg("now playing notification failed")
		return
	}
	n.id = id
	n.last = notif
	n.last.ReplacesID = 0
}

func (n *NowPlaying) build(p presenter.Presentation) Notification {
	notif := Notification{
		AppName: n.opts.AppName,
		Title:   p.Title,
		Timeout: int32(n.opts.Timeout.Milliseconds()),
		Urgency: UrgencyLow,
	}
	if p.Masked() {
		// Mask only: no artist, no state.
		notif.AppName = n.opts.StealthAppName
		return notif
	}

	notif.DesktopEntry = desktopEntry
	status := statusPlaying
	if p.State == playback.StatePaused {
		status = statusPaused
	}
	notif.Body = status
	if p.Artist != "" {
		notif.Body = p.Artist + " · " + status
	}
	return notif
}

// Clear closes the notification if one is shown. Later updates are
// ignored so a tick racing shutdown cannot show it again.
func (n *NowPlaying) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closeLocked()
	n.closed = true
}

func (n *NowPlaying) closeLocked() {
	if n.id == 0 {
		return
	}
	if err := n.notifier.Close(n.id); err != nil {
		zlog.Debug().Err(err).Uint32("id", n.id).Msg("closing notification failed")
	}
	n.id = 0
	n.last = Notification{}
}
