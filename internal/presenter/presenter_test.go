package presenter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/hush/internal/playback"
	"github.com/llehouerou/hush/internal/playlist"
)

var testMasks = Masks{Title: "Notification", Artist: " "}

func playingSnapshot() playback.Snapshot {
	return playback.Snapshot{
		State:       playback.StatePlaying,
		ActiveTrack: &playlist.Track{ID: "/music/song.mp3", DisplayName: "song.mp3", Artist: "Someone"},
		Position:    30 * time.Second,
		Duration:    3 * time.Minute,
		QueueIndex:  0,
	}
}

func TestPresent_RealMetadata(t *testing.T) {
	p := Present(playingSnapshot(), false, testMasks)

	assert.Equal(t, "song.mp3", p.Title)
	assert.Equal(t, "Someone", p.Artist)
	assert.Equal(t, 3*time.Minute, p.Duration)
	assert.Equal(t, 30*time.Second, p.Position)
	assert.Equal(t, AllActions, p.Actions)
	assert.Equal(t, playback.StatePlaying, p.State)
	assert.False(t, p.Masked())
}

func TestPresent_Stealth(t *testing.T) {
	snap := playingSnapshot()

	p := Present(snap, true, testMasks)

	assert.Equal(t, "Notification", p.Title)
	assert.Equal(t, " ", p.Artist)
	assert.Equal(t, Unknown, p.Duration)
	assert.Equal(t, Unknown, p.Position)
	assert.Equal(t, Action(0), p.Actions)
	assert.Equal(t, playback.StatePlaying, p.State, "state is still reported")
	assert.True(t, p.Masked())

	// The snapshot itself is untouched.
	assert.Equal(t, 30*time.Second, snap.Position)
	assert.Equal(t, 3*time.Minute, snap.Duration)
}

func TestPresent_StealthIgnoresSnapshotFlag(t *testing.T) {
	snap := playingSnapshot()
	snap.Stealth = true

	p := Present(snap, false, testMasks)

	assert.Equal(t, "song.mp3", p.Title)
	assert.Equal(t, AllActions, p.Actions)
}

func TestPresent_NoActiveTrack(t *testing.T) {
	snap := playback.Snapshot{
		State:      playback.StateStopped,
		Duration:   playback.UnknownDuration,
		QueueIndex: -1,
	}

	p := Present(snap, false, testMasks)

	assert.Empty(t, p.Title)
	assert.Empty(t, p.Artist)
	assert.Equal(t, Unknown, p.Duration)
	assert.Equal(t, time.Duration(0), p.Position)
	assert.Equal(t, playback.StateStopped, p.State)
}

func TestAction_Has(t *testing.T) {
	tests := []struct {
		set   Action
		check Action
		want  bool
	}{
		{AllActions, ActionSeek, true},
		{AllActions, ActionSkipNext | ActionSkipPrevious, true},
		{ActionPlay | ActionPause, ActionSeek, false},
		{0, ActionPlay, false},
	}
	for _, tt := range tests {
		if got := tt.set.Has(tt.check); got != tt.want {
			t.Errorf("%b.Has(%b) = %v, want %v", tt.set, tt.check, got, tt.want)
		}
	}
}

func TestListName(t *testing.T) {
	track := playlist.Track{ID: "/music/song.mp3", DisplayName: "song.mp3"}

	tests := []struct {
		index   int
		privacy bool
		want    string
	}{
		{0, false, "song.mp3"},
		{0, true, "0001"},
		{41, true, "0042"},
		{12344, true, "12345"},
	}
	for _, tt := range tests {
		if got := ListName(track, tt.index, tt.privacy); got != tt.want {
			t.Errorf("ListName(%d, %v) = %q, want %q", tt.index, tt.privacy, got, tt.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{Unknown, "--:--"},
		{0, "0:00"},
		{65 * time.Second, "1:05"},
		{61 * time.Minute, "61:00"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.d); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
