package playlist

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/llehouerou/hush/internal/player"
)

// FromPath creates a track from a file path, reading its artist tag when
// one is present. The display name is always the file name.
func FromPath(path string) Track {
	t := Track{
		ID:          path,
		DisplayName: filepath.Base(path),
	}
	if info, err := player.ReadTrackInfo(path); err == nil {
		t.Artist = info.Artist
	}
	return t
}

// CollectFromDir lists the playable files directly inside dir, sorted by
// lower-cased name.
func CollectFromDir(dir string) ([]Track, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var tracks []Track
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if !player.IsMusicFile(path) {
			continue
		}
		tracks = append(tracks, FromPath(path))
	}

	sort.SliceStable(tracks, func(i, j int) bool {
		return strings.ToLower(tracks[i].DisplayName) < strings.ToLower(tracks[j].DisplayName)
	})
	return tracks, nil
}
