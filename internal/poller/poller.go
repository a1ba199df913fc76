// Package poller samples the playback session at a fixed interval for
// views that display a moving position.
package poller

import (
	"context"
	"sync"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/hush/internal/playback"
)

// DefaultInterval is the tick period used when none is configured.
const DefaultInterval = time.Second

// Source provides session snapshots. Reading must not mutate the session.
type Source interface {
	Snapshot() playback.Snapshot
}

// Observer receives snapshots. Refresh is called when the active track
// changed since the previous tick (and on the first tick after a start),
// Tick otherwise.
type Observer interface {
	Refresh(snap playback.Snapshot)
	Tick(snap playback.Snapshot)
}

type entry struct {
	id  int
	obs Observer
}

// Poller runs a single ticker while at least one observer is registered.
type Poller struct {
	source   Source
	interval time.Duration

	mu        sync.Mutex
	observers []entry
	nextID    int
	cancel    context.CancelFunc
	closed    bool
}

// New creates a poller over source. A non-positive interval uses
// DefaultInterval.
func New(source Source, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		source:   source,
		interval: interval,
	}
}

// Register adds an observer and starts ticking if it is the first one.
// The returned function unregisters it; the ticker stops with the last
// observer. Registering on a closed poller is a no-op.
func (p *Poller) Register(o Observer) (unregister func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return func() {}
	}

	id := p.nextID
	p.nextID++
	p.observers = append(p.observers, entry{id: id, obs: o})
	if p.cancel == nil {
		p.startLocked()
	}

	var once sync.Once
	return func() {
		once.Do(func() { p.unregister(id) })
	}
}

func (p *Poller) unregister(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, e := range p.observers {
		if e.id == id {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			break
		}
	}
	if len(p.observers) == 0 {
		p.stopLocked()
	}
}

// Running reports whether the ticker goroutine is scheduled.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// Close stops ticking and drops all observers. Later registrations are
// ignored.
func (p *Poller) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.observers = nil
	p.stopLocked()
}

func (p *Poller) startLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	zlog.Debug().Dur("interval", p.interval).Msg("poller started")
	go p.run(ctx)
}

func (p *Poller) stopLocked() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	p.cancel = nil
	zlog.Debug().Msg("poller stopped")
}

func (p *Poller) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	first := true
	var lastID string
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := p.source.Snapshot()
			id := snap.ActiveID()
			refresh := first || id != lastID
			first = false
			lastID = id

			for _, o := range p.snapshotObservers(ctx) {
				if refresh {
					o.Refresh(snap)
				} else {
					o.Tick(snap)
				}
			}
		}
	}
}

// snapshotObservers copies the observer list so callbacks run without
// the lock held; they may unregister themselves. It returns nil once ctx
// is cancelled so a stopped generation never calls back.
func (p *Poller) snapshotObservers(ctx context.Context) []Observer {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ctx.Err() != nil {
		return nil
	}
	result := make([]Observer, len(p.observers))
	for i, e := range p.observers {
		result[i] = e.obs
	}
	return result
}
