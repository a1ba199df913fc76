package playback

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/hush/internal/player"
	"github.com/llehouerou/hush/internal/playlist"
)

// Verify Session implements Service at compile time.
var _ Service = (*Session)(nil)

// Options holds the settings a session starts with. Both can be changed
// later through SetPlayMode and SetStealth.
type Options struct {
	Mode    playlist.PlayMode
	Stealth bool
}

// Session is the playback state machine. Every mutation runs on the
// goroutine executing Run, one command at a time; engine completion is
// consumed by the same loop, so commands and automatic advancement never
// interleave.
type Session struct {
	engine player.Interface
	queue  *playlist.PlayingQueue

	cmds      chan func()
	done      chan struct{}
	closeOnce sync.Once

	// Owned by the Run goroutine.
	state    State
	active   *playlist.Track
	position time.Duration // frozen value while paused
	duration time.Duration
	stealth  bool
	mode     playlist.PlayMode

	pending []any // events raised by the running command

	snap   atomic.Pointer[Snapshot]
	tracks atomic.Pointer[[]playlist.Track]

	subsMu     sync.Mutex
	subs       []*Subscription
	subsClosed bool
}

// New creates a session driving engine over queue. Run must be called for
// commands to be processed.
func New(engine player.Interface, queue *playlist.PlayingQueue, opts Options) *Session {
	if queue == nil {
		queue = playlist.NewQueue()
	}
	mode := opts.Mode
	if !mode.Valid() {
		mode = playlist.PlayModeNone
	}
	s := &Session{
		engine:  engine,
		queue:   queue,
		cmds:    make(chan func()),
		done:    make(chan struct{}),
		stealth: opts.Stealth,
		mode:    mode,
	}
	s.publish()
	s.publishQueue()
	return s
}

// Run processes commands and engine completion until ctx is cancelled or
// Close is called. The engine is stopped on return.
func (s *Session) Run(ctx context.Context) error {
	defer s.shutdown()

	zlog.Debug().Str("mode", s.mode.String()).Bool("stealth", s.stealth).Msg("session started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		case cmd := <-s.cmds:
			select {
			case <-s.done:
				return nil
			default:
			}
			cmd()
		case <-s.engine.Finished():
			s.handleFinished()
			s.flush()
		}
	}
}

// Close stops the session. Pending and later commands fail with
// ErrSessionClosed.
func (s *Session) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	s.closeSubscriptions()
	return nil
}

func (s *Session) shutdown() {
	_ = s.Close()
	s.engine.Stop()
	zlog.Debug().Msg("session stopped")
}

// do runs fn on the session goroutine and waits for its result. The
// snapshot is published and the events are sent before the caller is
// released.
func (s *Session) do(fn func() error) error {
	select {
	case <-s.done:
		return ErrSessionClosed
	default:
	}
	reply := make(chan error, 1)
	select {
	case s.cmds <- func() {
		err := fn()
		s.flush()
		reply <- err
	}:
	case <-s.done:
		return ErrSessionClosed
	}
	select {
	case err := <-reply:
		return err
	case <-s.done:
		return ErrSessionClosed
	}
}

// Snapshot returns the current session state. While playing, the position
// is sampled from the engine.
func (s *Session) Snapshot() Snapshot {
	snap := *s.snap.Load()
	if snap.State == StatePlaying {
		snap.Position = s.engine.Position()
	}
	return snap
}

// QueueTracks returns a copy of the queue contents.
func (s *Session) QueueTracks() []playlist.Track {
	tracks := *s.tracks.Load()
	result := make([]playlist.Track, len(tracks))
	copy(result, tracks)
	return result
}

// QueueIndex returns the queue index of the active item (-1 if none).
func (s *Session) QueueIndex() int {
	return s.snap.Load().QueueIndex
}

// Subscribe creates a new event subscription. After Close the returned
// subscription is already done.
func (s *Session) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if s.subsClosed {
		return closedSubscription()
	}
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

func (s *Session) closeSubscriptions() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if s.subsClosed {
		return
	}
	s.subsClosed = true
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
}

func (s *Session) eachSub(fn func(*Subscription)) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, sub := range s.subs {
		fn(sub)
	}
}

// publish stores an immutable copy of the loop-owned state.
func (s *Session) publish() {
	snap := &Snapshot{
		State:      s.state,
		Position:   s.position,
		Duration:   s.duration,
		Stealth:    s.stealth,
		QueueIndex: s.queue.CurrentIndex(),
		Mode:       s.mode,
	}
	if s.active != nil {
		t := *s.active
		snap.ActiveTrack = &t
	}
	if s.stealth || s.active == nil {
		snap.Duration = UnknownDuration
	}
	s.snap.Store(snap)
}

func (s *Session) publishQueue() {
	tracks := s.queue.Tracks()
	s.tracks.Store(&tracks)
}

func (s *Session) setState(next State) {
	prev := s.state
	s.state = next
	if prev == next {
		return
	}
	s.raise(StateChange{Previous: prev, Current: next})
}

func (s *Session) emitTrack(e TrackChange) {
	s.raise(e)
}

func (s *Session) emitQueue() {
	s.publishQueue()
	s.raise(QueueChange{Tracks: s.queue.Tracks(), Index: s.queue.CurrentIndex()})
}

func (s *Session) emitMode() {
	s.raise(ModeChange{Mode: s.mode, Stealth: s.stealth})
}

func (s *Session) emitPosition(pos time.Duration) {
	s.raise(PositionChange{Position: pos})
}

func (s *Session) emitError(op, path string, err error) {
	s.raise(ErrorEvent{Operation: op, Path: path, Err: err})
}

// raise queues an event until the running command completes.
func (s *Session) raise(e any) {
	s.pending = append(s.pending, e)
}

// flush publishes the snapshot, then sends the queued events, so a
// subscriber reacting to an event reads the state that produced it.
func (s *Session) flush() {
	s.publish()
	if len(s.pending) == 0 {
		return
	}
	events := s.pending
	s.pending = nil
	s.eachSub(func(sub *Subscription) {
		for _, e := range events {
			sub.deliver(e)
		}
	})
}
