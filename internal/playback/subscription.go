package playback

// eventBufferSize is the per-channel backlog kept for a slow subscriber.
// Events beyond it are dropped; subscribers re-read Snapshot anyway.
const eventBufferSize = 16

// Subscription delivers session events. Every event is sent only after
// the snapshot reflecting it has been published, so a subscriber reacting
// to an event with Snapshot never sees older state.
type Subscription struct {
	StateChanged    <-chan StateChange
	TrackChanged    <-chan TrackChange
	PositionChanged <-chan PositionChange
	QueueChanged    <-chan QueueChange
	ModeChanged     <-chan ModeChange
	Error           <-chan ErrorEvent
	Done            <-chan struct{}

	stateCh    chan StateChange
	trackCh    chan TrackChange
	positionCh chan PositionChange
	queueCh    chan QueueChange
	modeCh     chan ModeChange
	errorCh    chan ErrorEvent
	doneCh     chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		stateCh:    make(chan StateChange, eventBufferSize),
		trackCh:    make(chan TrackChange, eventBufferSize),
		positionCh: make(chan PositionChange, eventBufferSize),
		queueCh:    make(chan QueueChange, eventBufferSize),
		modeCh:     make(chan ModeChange, eventBufferSize),
		errorCh:    make(chan ErrorEvent, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.TrackChanged = s.trackCh
	s.PositionChanged = s.positionCh
	s.QueueChanged = s.queueCh
	s.ModeChanged = s.modeCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	close(s.doneCh)
}

// closedSubscription is handed out after the session is closed.
func closedSubscription() *Subscription {
	s := newSubscription()
	s.close()
	return s
}

// deliver routes one of the event types to its channel.
func (s *Subscription) deliver(e any) {
	switch e := e.(type) {
	case StateChange:
		offer(s.stateCh, e)
	case TrackChange:
		offer(s.trackCh, e)
	case PositionChange:
		offer(s.positionCh, e)
	case QueueChange:
		offer(s.queueCh, e)
	case ModeChange:
		offer(s.modeCh, e)
	case ErrorEvent:
		offer(s.errorCh, e)
	}
}

// offer sends v unless ch is full.
func offer[T any](ch chan<- T, v T) {
	select {
	case ch <- v:
	default:
	}
}
