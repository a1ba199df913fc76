package player

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Start begins or continues output of the loaded stream.
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Paused || p.ctrl == nil {
		return
	}

	if !p.started {
		p.started = true
		p.ctrl.Paused = false
		finished := p.finishedCh
		speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
			select {
			case finished <- struct{}{}:
			default:
			}
		})))
	} else {
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
	}
	p.state = Playing
}

// Pause halts output, keeping the stream and position.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Stop stops output and releases the stream and file.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Stopped {
		return
	}

	if p.started {
		speaker.Clear()
	}
	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}

	p.ctrl = nil
	p.started = false
	p.duration = 0
	p.state = Stopped
}

// SeekTo moves to an absolute position, clamped to the stream bounds.
func (p *Player) SeekTo(position time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil || p.state == Stopped {
		return
	}

	n := p.format.SampleRate.N(position)
	n = min(n, p.streamer.Len()-1)
	n = max(n, 0)

	speaker.Lock()
	_ = p.streamer.Seek(n)
	speaker.Unlock()
}

// State returns the engine state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

// Duration returns the loaded stream's duration, 0 when nothing is loaded.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.duration
}

// Finished signals natural completion of a started stream.
func (p *Player) Finished() <-chan struct{} {
	return p.finishedCh
}
