//go:build linux

package mpris

import (
	"context"
	"testing"
	"time"

	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/hush/internal/playback"
	"github.com/llehouerou/hush/internal/player"
	"github.com/llehouerou/hush/internal/playlist"
	"github.com/llehouerou/hush/internal/presenter"
)

var testMasks = presenter.Masks{Title: "Notification", Artist: " "}

func newTestAdapters(t *testing.T) (*rootAdapter, *playerAdapter, *playback.Session, *player.Mock) {
	t.Helper()
	m := player.NewMock()
	s := playback.New(m, playlist.NewQueue(), playback.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = s.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	opts := Options{Identity: "Hush", StealthIdentity: "Notifications", Masks: testMasks}
	return &rootAdapter{service: s, opts: opts}, &playerAdapter{service: s, masks: testMasks}, s, m
}

func playTracks(t *testing.T, s *playback.Session) {
	t.Helper()
	require.NoError(t, s.PlayFrom([]playlist.Track{
		{ID: "/music/a.mp3", DisplayName: "a.mp3", Artist: "Someone"},
		{ID: "/music/b.mp3", DisplayName: "b.mp3"},
	}, 0))
}

func TestMetadata_ShowsTrack(t *testing.T) {
	_, p, s, _ := newTestAdapters(t)
	playTracks(t, s)

	meta, err := p.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "a.mp3", meta.Title)
	assert.Equal(t, []string{"Someone"}, meta.Artist)
	assert.Equal(t, types.Microseconds((3 * time.Minute).Microseconds()), meta.Length)
	assert.Equal(t, formatTrackID("/music/a.mp3"), string(meta.TrackId))
}

func TestMetadata_MaskedUnderStealth(t *testing.T) {
	_, p, s, _ := newTestAdapters(t)
	playTracks(t, s)
	require.NoError(t, s.SetStealth(true))

	meta, err := p.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "Notification", meta.Title)
	assert.Equal(t, []string{" "}, meta.Artist)
	assert.Zero(t, meta.Length)
	assert.Empty(t, meta.ArtUrl)
	assert.Equal(t, formatTrackID(""), string(meta.TrackId))
}

func TestMetadata_NoTrack(t *testing.T) {
	_, p, _, _ := newTestAdapters(t)

	meta, err := p.Metadata()
	require.NoError(t, err)
	assert.Empty(t, meta.Title)
}

func TestCapabilities_FollowStealth(t *testing.T) {
	_, p, s, _ := newTestAdapters(t)
	playTracks(t, s)

	checks := []func() (bool, error){
		p.CanPlay, p.CanPause, p.CanSeek, p.CanGoNext, p.CanGoPrevious, p.CanControl,
	}
	for _, check := range checks {
		ok, err := check()
		require.NoError(t, err)
		assert.True(t, ok)
	}

	require.NoError(t, s.SetStealth(true))
	for _, check := range checks {
		ok, err := check()
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestCommands_IgnoredUnderStealth(t *testing.T) {
	_, p, s, m := newTestAdapters(t)
	playTracks(t, s)
	require.NoError(t, s.SetStealth(true))

	require.NoError(t, p.Pause())
	require.NoError(t, p.Stop())
	require.NoError(t, p.Next())
	require.NoError(t, p.SetPosition("", types.Microseconds(time.Second.Microseconds())))

	snap := s.Snapshot()
	assert.Equal(t, playback.StatePlaying, snap.State)
	assert.Equal(t, "/music/a.mp3", snap.ActiveID())
	assert.Empty(t, m.SeekCalls())
}

func TestCommands_DriveSession(t *testing.T) {
	_, p, s, _ := newTestAdapters(t)
	playTracks(t, s)

	require.NoError(t, p.PlayPause())
	assert.Equal(t, playback.StatePaused, s.Snapshot().State)

	require.NoError(t, p.Play())
	assert.Equal(t, playback.StatePlaying, s.Snapshot().State)

	require.NoError(t, p.Next())
	assert.Equal(t, "/music/b.mp3", s.Snapshot().ActiveID())

	// Past the end is not an error for MPRIS clients.
	require.NoError(t, p.Next())

	require.NoError(t, p.SetPosition("", types.Microseconds((30 * time.Second).Microseconds())))
	assert.Equal(t, 30*time.Second, s.Snapshot().Position.Truncate(time.Second))

	require.NoError(t, p.Stop())
	assert.Equal(t, playback.StateStopped, s.Snapshot().State)
}

func TestMetadata_MaskedWhenStealthEventArrives(t *testing.T) {
	_, p, s, _ := newTestAdapters(t)
	playTracks(t, s)
	sub := s.Subscribe()

	for _, stealth := range []bool{true, false, true} {
		go func() { _ = s.SetStealth(stealth) }()
		e := <-sub.ModeChanged
		require.Equal(t, stealth, e.Stealth)

		meta, err := p.Metadata()
		require.NoError(t, err)
		canControl, err := p.CanControl()
		require.NoError(t, err)
		if stealth {
			assert.Equal(t, "Notification", meta.Title)
			assert.Empty(t, meta.ArtUrl)
			assert.False(t, canControl)
		} else {
			assert.Equal(t, "a.mp3", meta.Title)
			assert.True(t, canControl)
		}
	}
}

func TestPositionAndStatus(t *testing.T) {
	_, p, s, m := newTestAdapters(t)

	status, err := p.PlaybackStatus()
	require.NoError(t, err)
	assert.Equal(t, types.PlaybackStatusStopped, status)

	playTracks(t, s)
	m.SetPosition(42 * time.Second)

	pos, err := p.Position()
	require.NoError(t, err)
	assert.Equal(t, (42 * time.Second).Microseconds(), pos)

	require.NoError(t, s.SetStealth(true))
	pos, err = p.Position()
	require.NoError(t, err)
	assert.Zero(t, pos)

	status, err = p.PlaybackStatus()
	require.NoError(t, err)
	assert.Equal(t, types.PlaybackStatusPlaying, status)
}

func TestLoopStatus(t *testing.T) {
	_, p, s, _ := newTestAdapters(t)

	for _, tc := range []struct {
		status types.LoopStatus
		mode   playlist.PlayMode
	}{
		{types.LoopStatusTrack, playlist.PlayModeRepeatOne},
		{types.LoopStatusPlaylist, playlist.PlayModeRepeatAll},
		{types.LoopStatusNone, playlist.PlayModeNone},
	} {
		require.NoError(t, p.SetLoopStatus(tc.status))
		assert.Equal(t, tc.mode, s.Snapshot().Mode)
		got, err := p.LoopStatus()
		require.NoError(t, err)
		assert.Equal(t, tc.status, got)
	}
}

func TestIdentity(t *testing.T) {
	r, _, s, _ := newTestAdapters(t)

	id, err := r.Identity()
	require.NoError(t, err)
	assert.Equal(t, "Hush", id)

	require.NoError(t, s.SetStealth(true))
	id, err = r.Identity()
	require.NoError(t, err)
	assert.Equal(t, "Notifications", id)
}

func TestFormatTrackID(t *testing.T) {
	assert.Equal(t, "/org/mpris/MediaPlayer2/TrackList/NoTrack", formatTrackID(""))
	a := formatTrackID("/music/a.mp3")
	assert.Contains(t, a, "/org/mpris/MediaPlayer2/Track/")
	assert.Equal(t, a, formatTrackID("/music/a.mp3"))
	assert.NotEqual(t, a, formatTrackID("/music/b.mp3"))
}
