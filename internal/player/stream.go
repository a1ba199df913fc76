package player

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
)

// openStream opens path and decodes it by extension. On success the caller
// owns both the file and the streamer.
func openStream(path string) (*os.File, beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsMusicFile(path) {
		return nil, nil, beep.Format{}, errors.Newf("unsupported format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case extMP3:
		streamer, format, err = decodeMP3(f)
		if err != nil {
			// Fall back to beep's decoder for streams go-mp3 rejects
			if _, serr := f.Seek(0, io.SeekStart); serr != nil {
				f.Close()
				return nil, nil, beep.Format{}, serr
			}
			streamer, format, err = mp3.Decode(f)
		}
	case extFLAC:
		// Some taggers prepend ID3v2 to FLAC files, which the decoder rejects
		if err := skipID3v2(f); err != nil {
			f.Close()
			return nil, nil, beep.Format{}, err
		}
		streamer, format, err = flac.Decode(f)
	case extWAV:
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, nil, beep.Format{}, errors.Wrapf(err, "decode %s", filepath.Base(path))
	}
	return f, streamer, format, nil
}

// pathFromURI accepts either a plain path or a file:// URI.
func pathFromURI(uri string) string {
	if !strings.HasPrefix(uri, "file://") {
		return uri
	}
	u, err := url.Parse(uri)
	if err != nil {
		return strings.TrimPrefix(uri, "file://")
	}
	return u.Path
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of the file.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// Syncsafe integer: 7 significant bits per byte
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
