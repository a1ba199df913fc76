package playback

import (
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/hush/internal/playlist"
)

// Play loads and starts track. When the track is queued, the queue index
// is moved to it.
func (s *Session) Play(track playlist.Track) error {
	return s.do(func() error {
		return s.start(track, func() { s.queue.Resync(track) })
	})
}

// PlayFrom replaces the queue with tracks and plays tracks[index]. An
// out-of-range index leaves the queue untouched.
func (s *Session) PlayFrom(tracks []playlist.Track, index int) error {
	return s.do(func() error {
		if index < 0 || index >= len(tracks) {
			return errors.Wrapf(ErrInvalidIndex, "play from %d of %d", index, len(tracks))
		}
		s.queue.SetQueue(tracks, index)
		s.emitQueue()
		return s.playIndex(index)
	})
}

// PlayIndex plays the queue item at index.
func (s *Session) PlayIndex(index int) error {
	return s.do(func() error {
		return s.playIndex(index)
	})
}

// Pause pauses playback. It is a no-op unless playing.
func (s *Session) Pause() error {
	return s.do(func() error {
		s.pause()
		return nil
	})
}

// Resume continues paused playback. It is a no-op while playing and fails
// with ErrNoActiveTrack when nothing is loaded.
func (s *Session) Resume() error {
	return s.do(s.resume)
}

// Toggle pauses while playing and resumes while paused. When stopped it
// plays the queue's current item, or the first one.
func (s *Session) Toggle() error {
	return s.do(func() error {
		switch s.state {
		case StatePlaying:
			s.pause()
			return nil
		case StatePaused:
			return s.resume()
		default:
			if s.queue.IsEmpty() {
				s.emitError("play", "", ErrNoActiveTrack)
				return ErrNoActiveTrack
			}
			return s.playIndex(max(s.queue.CurrentIndex(), 0))
		}
	})
}

// Stop stops playback and releases the loaded track.
func (s *Session) Stop() error {
	return s.do(func() error {
		s.stop()
		return nil
	})
}

// Seek moves to position, clamped into the track duration. It does nothing
// when stopped or when the duration is unknown, which is always the case
// under stealth.
func (s *Session) Seek(position time.Duration) error {
	return s.do(func() error {
		s.seek(position)
		return nil
	})
}

// SeekBy seeks relative to the current position.
func (s *Session) SeekBy(delta time.Duration) error {
	return s.do(func() error {
		s.seek(s.currentPosition() + delta)
		return nil
	})
}

// SkipNext plays the item that follows under the current play mode.
// At the end of the queue in PlayModeNone nothing changes and
// ErrQueueExhausted is returned.
func (s *Session) SkipNext() error {
	return s.do(func() error {
		s.resync()
		next, ok := s.queue.Advance(s.mode)
		if !ok {
			return ErrQueueExhausted
		}
		return s.playIndex(next)
	})
}

// SkipPrevious plays the preceding item, wrapping to the last one.
// The play mode is not consulted.
func (s *Session) SkipPrevious() error {
	return s.do(func() error {
		s.resync()
		prev, ok := s.queue.Retreat()
		if !ok {
			return ErrQueueExhausted
		}
		return s.playIndex(prev)
	})
}

// SetStealth switches stealth on or off. State and position are kept;
// the published duration becomes unknown while enabled and is read back
// from the engine when disabled.
func (s *Session) SetStealth(enabled bool) error {
	return s.do(func() error {
		if s.stealth == enabled {
			return nil
		}
		s.stealth = enabled
		if !enabled && s.active != nil {
			s.duration = s.engine.Duration()
		}
		zlog.Info().Bool("stealth", enabled).Msg("stealth changed")
		s.emitMode()
		return nil
	})
}

// SetPlayMode sets the repeat policy. Unknown modes fall back to
// PlayModeNone.
func (s *Session) SetPlayMode(mode playlist.PlayMode) error {
	return s.do(func() error {
		s.setMode(mode)
		return nil
	})
}

// CycleMode moves to the next play mode and returns it.
func (s *Session) CycleMode() (playlist.PlayMode, error) {
	var mode playlist.PlayMode
	err := s.do(func() error {
		s.setMode(s.mode.Next())
		mode = s.mode
		return nil
	})
	return mode, err
}

// SetQueue replaces the queue without touching playback.
func (s *Session) SetQueue(tracks []playlist.Track, startIndex int) error {
	return s.do(func() error {
		s.queue.SetQueue(tracks, startIndex)
		s.emitQueue()
		return nil
	})
}

// Enqueue appends tracks to the queue.
func (s *Session) Enqueue(tracks ...playlist.Track) error {
	return s.do(func() error {
		if len(tracks) == 0 {
			return nil
		}
		s.queue.Add(tracks...)
		s.emitQueue()
		return nil
	})
}

// RemoveFromQueue removes the queue item at index. Removing the item that
// is playing stops playback and returns ErrActiveTrackRemoved.
func (s *Session) RemoveFromQueue(index int) error {
	return s.do(func() error {
		removed := s.queue.Track(index)
		removedCurrent, ok := s.queue.RemoveAt(index)
		if !ok {
			return errors.Wrapf(ErrInvalidIndex, "remove %d", index)
		}
		s.emitQueue()
		if !removedCurrent || s.active == nil || !s.active.Equal(*removed) {
			return nil
		}
		s.stop()
		s.emitError("remove", removed.ID, ErrActiveTrackRemoved)
		return ErrActiveTrackRemoved
	})
}

// MoveInQueue moves a queue item. The active item keeps its identity.
func (s *Session) MoveInQueue(from, to int) error {
	return s.do(func() error {
		if !s.queue.Move(from, to) {
			return errors.Wrapf(ErrInvalidIndex, "move %d to %d", from, to)
		}
		s.emitQueue()
		return nil
	})
}

// The methods below run on the session goroutine only.

func (s *Session) playIndex(index int) error {
	t := s.queue.Track(index)
	if t == nil {
		return errors.Wrapf(ErrInvalidIndex, "play %d", index)
	}
	return s.start(*t, func() { s.queue.JumpTo(index) })
}

// start releases the engine, loads track and starts it. commit runs only
// once playback has actually started, so a failed load leaves the queue
// index where it was.
func (s *Session) start(track playlist.Track, commit func()) error {
	prev, prevIndex := s.active, s.queue.CurrentIndex()

	s.engine.Stop()
	duration, err := s.engine.Load(track.ID)
	if err != nil {
		s.reset()
		err = errors.Mark(errors.Wrapf(err, "load %s", track.ID), ErrEngineLoadFailed)
		zlog.Warn().Err(err).Str("track", track.ID).Msg("playback failed")
		s.emitError("play", track.ID, err)
		return err
	}
	s.engine.Start()
	commit()

	t := track
	s.active = &t
	s.position = 0
	s.duration = duration
	s.setState(StatePlaying)

	index := s.queue.CurrentIndex()
	zlog.Debug().Str("track", track.ID).Int("index", index).Msg("playing")
	s.emitTrack(TrackChange{
		Previous:      prev,
		Current:       &t,
		PreviousIndex: prevIndex,
		Index:         index,
	})
	return nil
}

func (s *Session) pause() {
	if s.state != StatePlaying {
		return
	}
	s.position = s.engine.Position()
	s.engine.Pause()
	s.setState(StatePaused)
}

func (s *Session) resume() error {
	switch s.state {
	case StatePlaying:
		return nil
	case StatePaused:
		s.engine.Start()
		s.setState(StatePlaying)
		return nil
	default:
		s.emitError("resume", "", ErrNoActiveTrack)
		return ErrNoActiveTrack
	}
}

func (s *Session) stop() {
	s.engine.Stop()
	s.reset()
}

// reset puts the session back to Stopped with nothing loaded.
func (s *Session) reset() {
	s.active = nil
	s.position = 0
	s.duration = 0
	s.setState(StateStopped)
}

func (s *Session) seek(position time.Duration) {
	if !s.state.IsActive() || s.stealth || s.duration <= 0 {
		return
	}
	position = max(min(position, s.duration), 0)
	s.engine.SeekTo(position)
	if s.state == StatePaused {
		s.position = position
	}
	s.emitPosition(position)
}

func (s *Session) currentPosition() time.Duration {
	if s.state == StatePlaying {
		return s.engine.Position()
	}
	return s.position
}

func (s *Session) setMode(mode playlist.PlayMode) {
	if !mode.Valid() {
		mode = playlist.PlayModeNone
	}
	if s.mode == mode {
		return
	}
	s.mode = mode
	zlog.Info().Str("mode", mode.String()).Msg("play mode changed")
	s.emitMode()
}

// resync points the queue index back at the active track when it drifted.
func (s *Session) resync() {
	if s.active != nil {
		s.queue.Resync(*s.active)
	}
}

// handleFinished advances the queue after the engine reports the end of
// the active track. When there is nothing to advance to, the session stops.
func (s *Session) handleFinished() {
	if s.active == nil {
		return
	}
	finished := s.active.ID
	s.resync()
	next, ok := s.queue.Advance(s.mode)
	if !ok {
		zlog.Debug().Str("track", finished).Msg("queue exhausted")
		s.stop()
		s.emitError("advance", finished, ErrQueueExhausted)
		return
	}
	if err := s.playIndex(next); err != nil {
		zlog.Debug().Err(err).Int("index", next).Msg("advance failed")
	}
}
