//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/hush/internal/errmsg"
	"github.com/llehouerou/hush/internal/playback"
	"github.com/llehouerou/hush/internal/playlist"
	"github.com/llehouerou/hush/internal/presenter"
)

// busName is the suffix of org.mpris.MediaPlayer2.<name>.
const busName = "hush"

// Options configures what the adapter shows.
type Options struct {
	Identity        string          // player name outside stealth
	StealthIdentity string          // player name under stealth
	Masks           presenter.Masks // metadata under stealth
}

// Adapter connects the playback session to MPRIS over D-Bus. Everything it
// publishes goes through the presenter, so stealth hides metadata, timing
// and transport capabilities.
type Adapter struct {
	service playback.Service
	server  *server.Server
	events  *events.EventHandler
	sub     *playback.Subscription
	done    chan struct{}
}

// New creates and starts a new MPRIS adapter.
func New(service playback.Service, opts Options) (*Adapter, error) {
	if opts.Identity == "" {
		opts.Identity = "Hush"
	}
	a := &Adapter{
		service: service,
		done:    make(chan struct{}),
	}

	// Create adapters that delegate to the service
	root := &rootAdapter{service: service, opts: opts}
	player := &playerAdapter{service: service, masks: opts.Masks}

	a.server = server.NewServer(busName, root, player)
	a.events = events.NewEventHandler(a.server)
	a.sub = service.Subscribe()

	// Start the server in background
	go func() {
		if err := a.server.Listen(); err != nil {
			zlog.Warn().Err(err).Msg("mpris server stopped")
		}
	}()
	go a.forward()

	return a, nil
}

// forward turns session events into PropertiesChanged signals.
func (a *Adapter) forward() {
	for {
		select {
		case <-a.done:
			return
		case <-a.sub.Done:
			return
		case <-a.sub.StateChanged:
			a.emit("playback status", a.events.Player.OnPlayPause())
		case <-a.sub.TrackChanged:
			a.emit("metadata", a.events.Player.OnTitle())
		case <-a.sub.QueueChanged:
			a.emit("options", a.events.Player.OnOptions())
		case <-a.sub.ModeChanged:
			// Stealth flips metadata and capabilities together.
			a.emit("metadata", a.events.Player.OnTitle())
			a.emit("options", a.events.Player.OnOptions())
		case e := <-a.sub.PositionChanged:
			if a.service.Snapshot().Stealth {
				continue
			}
			a.emit("seek", a.events.Player.OnSeek(types.Microseconds(e.Position.Microseconds())))
		case <-a.sub.Error:
		}
	}
}

func (a *Adapter) emit(what string, err error) {
	if err != nil {
		zlog.Debug().Err(err).Str("property", what).Msg("mpris signal failed")
	}
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	close(a.done)
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct {
	service playback.Service
	opts    Options
}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil // Track list interface not implemented
}

func (r *rootAdapter) Identity() (string, error) {
	if r.service.Snapshot().Stealth && r.opts.StealthIdentity != "" {
		return r.opts.StealthIdentity, nil
	}
	return r.opts.Identity, nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and the loop
// status extension.
type playerAdapter struct {
	service playback.Service
	masks   presenter.Masks
}

func (p *playerAdapter) present() (playback.Snapshot, presenter.Presentation) {
	snap := p.service.Snapshot()
	return snap, presenter.Present(snap, snap.Stealth, p.masks)
}

// allowed reports whether action is currently advertised. Commands for
// capabilities that are not advertised are ignored.
func (p *playerAdapter) allowed(action presenter.Action) bool {
	_, pres := p.present()
	return pres.Actions.Has(action)
}

func (p *playerAdapter) Next() error {
	if !p.allowed(presenter.ActionSkipNext) {
		return nil
	}
	return ignoreAdvisory(p.service.SkipNext())
}

func (p *playerAdapter) Previous() error {
	if !p.allowed(presenter.ActionSkipPrevious) {
		return nil
	}
	return ignoreAdvisory(p.service.SkipPrevious())
}

func (p *playerAdapter) Pause() error {
	if !p.allowed(presenter.ActionPause) {
		return nil
	}
	return p.service.Pause()
}

func (p *playerAdapter) PlayPause() error {
	if !p.allowed(presenter.ActionPlay | presenter.ActionPause) {
		return nil
	}
	return ignoreAdvisory(p.service.Toggle())
}

// Stop is a transport command like PlayPause and needs both capabilities.
func (p *playerAdapter) Stop() error {
	if !p.allowed(presenter.ActionPlay | presenter.ActionPause) {
		return nil
	}
	return p.service.Stop()
}

func (p *playerAdapter) Play() error {
	if !p.allowed(presenter.ActionPlay) {
		return nil
	}
	if p.service.Snapshot().State == playback.StatePaused {
		return p.service.Resume()
	}
	if p.service.Snapshot().State == playback.StateStopped {
		return ignoreAdvisory(p.service.Toggle())
	}
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	if !p.allowed(presenter.ActionSeek) {
		return nil
	}
	return p.service.SeekBy(time.Duration(offset) * time.Microsecond)
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	if !p.allowed(presenter.ActionSeek) {
		return nil
	}
	return p.service.Seek(time.Duration(position) * time.Microsecond)
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	_, pres := p.present()
	switch pres.State {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying, nil
	case playback.StatePaused:
		return types.PlaybackStatusPaused, nil
	case playback.StateStopped:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	snap, pres := p.present()
	if snap.ActiveTrack == nil && !pres.Masked() {
		return types.Metadata{}, nil
	}

	id := snap.ActiveID()
	if pres.Masked() {
		id = ""
	}
	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(id)),
		Title:   pres.Title,
		Artist:  []string{pres.Artist},
	}
	if pres.Duration > 0 {
		meta.Length = types.Microseconds(pres.Duration.Microseconds())
	}
	if !pres.Masked() {
		meta.ArtUrl = albumArtURL(snap.ActiveID())
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil // Volume control not exposed via service
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	_, pres := p.present()
	if pres.Position < 0 {
		return 0, nil
	}
	return pres.Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.allowed(presenter.ActionSkipNext) && len(p.service.QueueTracks()) > 0, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.allowed(presenter.ActionSkipPrevious) && len(p.service.QueueTracks()) > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.allowed(presenter.ActionPlay), nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.allowed(presenter.ActionPause), nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	_, pres := p.present()
	return pres.Actions.Has(presenter.ActionSeek) && pres.Duration > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	_, pres := p.present()
	return pres.Actions != 0, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	switch p.service.Snapshot().Mode {
	case playlist.PlayModeRepeatOne:
		return types.LoopStatusTrack, nil
	case playlist.PlayModeRepeatAll:
		return types.LoopStatusPlaylist, nil
	case playlist.PlayModeNone:
		return types.LoopStatusNone, nil
	}
	return types.LoopStatusNone, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	switch status {
	case types.LoopStatusNone:
		return p.service.SetPlayMode(playlist.PlayModeNone)
	case types.LoopStatusTrack:
		return p.service.SetPlayMode(playlist.PlayModeRepeatOne)
	case types.LoopStatusPlaylist:
		return p.service.SetPlayMode(playlist.PlayModeRepeatAll)
	}
	return nil
}

// ignoreAdvisory drops session errors that only report a defined outcome,
// such as skipping past the end of the queue.
func ignoreAdvisory(err error) error {
	if errmsg.Advisory(err) != "" {
		return nil
	}
	return err
}

func formatTrackID(id string) string {
	if id == "" {
		return "/org/mpris/MediaPlayer2/TrackList/NoTrack"
	}
	h := fnv.New64a()
	h.Write([]byte(id))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
