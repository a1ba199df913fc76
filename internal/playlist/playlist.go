package playlist

// Track references one playable item. ID is the URI or file path handed to
// the engine and is the track's identity; two tracks with the same ID are
// the same track even when their display names differ.
type Track struct {
	ID          string // engine URI (file path for local files)
	DisplayName string
	Artist      string // from tags, empty when unknown
}

// Equal reports whether t and other refer to the same item.
func (t Track) Equal(other Track) bool {
	return t.ID == other.ID
}

// Playlist holds the user's saved, ordered collection of tracks.
// A track appears at most once.
type Playlist struct {
	tracks []Track
}

// NewPlaylist creates a new empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{
		tracks: make([]Track, 0),
	}
}

// Add appends the tracks that are not already present.
// Returns the number of tracks actually added.
func (p *Playlist) Add(tracks ...Track) int {
	added := 0
	for _, t := range tracks {
		if p.Contains(t) {
			continue
		}
		p.tracks = append(p.tracks, t)
		added++
	}
	return added
}

// Contains reports whether a track with the same ID is in the playlist.
func (p *Playlist) Contains(t Track) bool {
	return indexOf(p.tracks, t) >= 0
}

// Remove removes the track at the given index.
// Returns false if index is out of bounds.
func (p *Playlist) Remove(index int) bool {
	if index < 0 || index >= len(p.tracks) {
		return false
	}
	p.tracks = append(p.tracks[:index], p.tracks[index+1:]...)
	return true
}

// Clear removes all tracks from the playlist.
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	t := p.tracks[index]
	return &t
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// Move moves the track at fromIndex to toIndex.
// Returns false if either index is out of bounds.
func (p *Playlist) Move(fromIndex, toIndex int) bool {
	return move(p.tracks, fromIndex, toIndex)
}

// move relocates tracks[from] to position to, shifting the items in
// between by one. It works in place.
func move(tracks []Track, from, to int) bool {
	if from < 0 || from >= len(tracks) || to < 0 || to >= len(tracks) {
		return false
	}
	if from == to {
		return true
	}

	t := tracks[from]
	if from < to {
		copy(tracks[from:to], tracks[from+1:to+1])
	} else {
		copy(tracks[to+1:from+1], tracks[to:from])
	}
	tracks[to] = t
	return true
}

func indexOf(tracks []Track, t Track) int {
	for i := range tracks {
		if tracks[i].Equal(t) {
			return i
		}
	}
	return -1
}
