package player

import (
	"os"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	zlog "github.com/rs/zerolog/log"
)

// Player is the beep-backed engine. It owns the speaker and at most one
// open decoded stream.
type Player struct {
	mu sync.Mutex

	state    State
	started  bool // stream handed to the speaker
	ctrl     *beep.Ctrl
	streamer beep.StreamSeekCloser
	format   beep.Format
	file     *os.File
	duration time.Duration

	finishedCh chan struct{}
}

var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// New creates a stopped player. The speaker is initialised lazily on the
// first Load, using that track's sample rate.
func New() *Player {
	return &Player{
		state:      Stopped,
		finishedCh: make(chan struct{}, 1),
	}
}

// Load releases the current stream, opens uri and prepares it for
// playback. The player is left Paused at position 0.
func (p *Player) Load(uri string) (time.Duration, error) {
	p.Stop()

	// Drain any stale finish signal from the previous track
	select {
	case <-p.finishedCh:
	default:
	}

	path := pathFromURI(uri)
	f, streamer, format, err := openStream(path)
	if err != nil {
		return 0, err
	}

	if err := initSpeaker(format.SampleRate); err != nil {
		streamer.Close()
		f.Close()
		return 0, errors.Wrap(err, "init speaker")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.file = f
	p.streamer = streamer
	p.format = format
	p.duration = format.SampleRate.D(streamer.Len())
	p.started = false

	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: true}
	p.state = Paused

	zlog.Debug().Str("path", path).Dur("duration", p.duration).Msg("player: loaded")
	return p.duration, nil
}

func initSpeaker(rate beep.SampleRate) error {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return err
	}
	speakerSampleRate = rate
	speakerInitialized = true
	return nil
}
