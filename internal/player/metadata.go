package player

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// TrackInfo holds the tag fields the player cares about.
type TrackInfo struct {
	Path   string
	Title  string
	Artist string
	Album  string
}

// ReadTrackInfo reads tags from path. Title falls back to the file name.
func ReadTrackInfo(path string) (*TrackInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}

	title := m.Title()
	if title == "" {
		title = filepath.Base(path)
	}

	artist := m.Artist()
	if artist == "" {
		artist = m.AlbumArtist()
	}

	return &TrackInfo{
		Path:   path,
		Title:  title,
		Artist: artist,
		Album:  m.Album(),
	}, nil
}

// IsMusicFile reports whether path has an extension the player decodes.
func IsMusicFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == extMP3 || ext == extFLAC || ext == extWAV
}
