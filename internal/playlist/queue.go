package playlist

// PlayingQueue is the ordered list of tracks eligible for sequential
// playback, plus the index of the active one.
//
// Invariant: currentIndex is -1 or a valid index into tracks. Every
// mutation below keeps it pointing at the same logical item.
type PlayingQueue struct {
	tracks       []Track
	currentIndex int // -1 if nothing is active
}

// NewQueue creates a new empty playing queue.
func NewQueue() *PlayingQueue {
	return &PlayingQueue{
		tracks:       make([]Track, 0),
		currentIndex: -1,
	}
}

// Current returns the active track, or nil if none.
func (q *PlayingQueue) Current() *Track {
	return q.Track(q.currentIndex)
}

// CurrentIndex returns the index of the active track (-1 if none).
func (q *PlayingQueue) CurrentIndex() int {
	return q.currentIndex
}

// Track returns a copy of the track at index, or nil if out of bounds.
func (q *PlayingQueue) Track(index int) *Track {
	if index < 0 || index >= len(q.tracks) {
		return nil
	}
	t := q.tracks[index]
	return &t
}

// SetQueue replaces the whole queue. Order is taken verbatim from tracks.
// An out-of-range startIndex leaves no active item.
func (q *PlayingQueue) SetQueue(tracks []Track, startIndex int) {
	q.tracks = make([]Track, len(tracks))
	copy(q.tracks, tracks)
	q.currentIndex = -1
	if startIndex >= 0 && startIndex < len(q.tracks) {
		q.currentIndex = startIndex
	}
}

// Advance computes the index that should play after the current one under
// mode. It does not move the queue: the caller commits with JumpTo once
// playback of the returned index has actually started.
//
//   - RepeatOne: the current index again (none if nothing is active).
//   - RepeatAll: the next index, wrapping to 0.
//   - None: the next index, or none past the end.
func (q *PlayingQueue) Advance(mode PlayMode) (int, bool) {
	n := len(q.tracks)
	if n == 0 {
		return -1, false
	}

	switch mode {
	case PlayModeRepeatOne:
		if q.currentIndex < 0 {
			return -1, false
		}
		return q.currentIndex, true
	case PlayModeRepeatAll:
		return (q.currentIndex + 1) % n, true
	default:
		next := q.currentIndex + 1
		if next >= n {
			return -1, false
		}
		return next, true
	}
}

// Retreat computes the previous index, wrapping to the last item.
// Repeat mode does not apply to stepping back.
func (q *PlayingQueue) Retreat() (int, bool) {
	n := len(q.tracks)
	if n == 0 {
		return -1, false
	}
	prev := q.currentIndex - 1
	if prev < 0 {
		prev = n - 1
	}
	return prev, true
}

// HasNext reports whether Advance would yield a track under mode.
func (q *PlayingQueue) HasNext(mode PlayMode) bool {
	_, ok := q.Advance(mode)
	return ok
}

// JumpTo sets the current index to the specified position.
// Returns the track at that position, or nil if invalid.
func (q *PlayingQueue) JumpTo(index int) *Track {
	if index < 0 || index >= len(q.tracks) {
		return nil
	}
	q.currentIndex = index
	return q.Current()
}

// IndexOf returns the first index holding a track with the same ID,
// or -1 when the track is not queued.
func (q *PlayingQueue) IndexOf(t Track) int {
	return indexOf(q.tracks, t)
}

// Resync points the current index back at t when the index has drifted
// (the item was moved by something that did not go through Move).
// Returns false when t is not in the queue; the index is then unchanged.
func (q *PlayingQueue) Resync(t Track) bool {
	if cur := q.Current(); cur != nil && cur.Equal(t) {
		return true
	}
	i := q.IndexOf(t)
	if i < 0 {
		return false
	}
	q.currentIndex = i
	return true
}

// Add appends tracks to the queue without changing the active item.
func (q *PlayingQueue) Add(tracks ...Track) {
	q.tracks = append(q.tracks, tracks...)
}

// RemoveAt removes the track at index.
//
// Removing an item before the active one shifts the index down by one so
// it keeps pointing at the same track. Removing the active item clears
// the index and reports removedCurrent so the session can stop.
func (q *PlayingQueue) RemoveAt(index int) (removedCurrent bool, ok bool) {
	if index < 0 || index >= len(q.tracks) {
		return false, false
	}
	q.tracks = append(q.tracks[:index], q.tracks[index+1:]...)

	switch {
	case index < q.currentIndex:
		q.currentIndex--
	case index == q.currentIndex:
		q.currentIndex = -1
		return true, true
	}
	return false, true
}

// Move moves the track at from to to. The current index follows the
// active item, not the numeric slot.
func (q *PlayingQueue) Move(from, to int) bool {
	if !move(q.tracks, from, to) {
		return false
	}

	cur := q.currentIndex
	switch {
	case cur < 0:
	case cur == from:
		q.currentIndex = to
	case from < cur && cur <= to:
		q.currentIndex--
	case to <= cur && cur < from:
		q.currentIndex++
	}
	return true
}

// Clear removes all tracks and resets the active item.
func (q *PlayingQueue) Clear() {
	q.tracks = q.tracks[:0]
	q.currentIndex = -1
}

// Tracks returns a copy of all tracks in the queue.
func (q *PlayingQueue) Tracks() []Track {
	result := make([]Track, len(q.tracks))
	copy(result, q.tracks)
	return result
}

// Len returns the number of tracks in the queue.
func (q *PlayingQueue) Len() int {
	return len(q.tracks)
}

// IsEmpty returns true if the queue has no tracks.
func (q *PlayingQueue) IsEmpty() bool {
	return len(q.tracks) == 0
}
