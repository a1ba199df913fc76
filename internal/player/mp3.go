package player

import (
	"encoding/binary"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	gomp3 "github.com/llehouerou/go-mp3"
)

// bytesPerFrame is one stereo 16-bit sample frame as emitted by go-mp3.
const bytesPerFrame = 4

// mp3Stream adapts a go-mp3 decoder, which seeks by sample instead of by
// frame, to beep.StreamSeekCloser.
type mp3Stream struct {
	dec    *gomp3.Decoder
	closer io.Closer
	buf    []byte
	err    error
}

// decodeMP3 decodes rc with go-mp3. The stream always has two channels.
func decodeMP3(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	dec, err := gomp3.NewDecoder(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	rate := dec.SampleRate()
	if rate <= 0 {
		return nil, beep.Format{}, errors.New("mp3: invalid sample rate")
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(rate),
		NumChannels: 2,
		Precision:   2,
	}
	return &mp3Stream{dec: dec, closer: rc}, format, nil
}

func (s *mp3Stream) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil {
		return 0, false
	}
	need := len(samples) * bytesPerFrame
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	buf := s.buf[:need]

	read, err := io.ReadFull(s.dec, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		s.err = err
		return 0, false
	}

	n := read / bytesPerFrame
	for i := range n {
		off := i * bytesPerFrame
		left := int16(binary.LittleEndian.Uint16(buf[off:]))    //nolint:gosec // PCM sample
		right := int16(binary.LittleEndian.Uint16(buf[off+2:])) //nolint:gosec // PCM sample
		samples[i][0] = float64(left) / 32768
		samples[i][1] = float64(right) / 32768
	}
	return n, n > 0
}

func (s *mp3Stream) Err() error {
	return s.err
}

func (s *mp3Stream) Len() int {
	return int(max(s.dec.SampleCount(), 0))
}

func (s *mp3Stream) Position() int {
	return int(s.dec.SamplePosition())
}

func (s *mp3Stream) Seek(p int) error {
	p = min(max(p, 0), s.Len())
	if err := s.dec.SeekToSample(int64(p)); err != nil {
		return err
	}
	s.err = nil
	return nil
}

func (s *mp3Stream) Close() error {
	return s.closer.Close()
}
