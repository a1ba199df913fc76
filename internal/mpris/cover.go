//go:build linux

package mpris

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// coverNames lists album art filenames in priority order. Matching is
// case-insensitive.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// albumArtURL returns a file:// URL for the art next to trackPath, or ""
// when the folder has none.
func albumArtURL(trackPath string) string {
	if trackPath == "" {
		return ""
	}
	dir := filepath.Dir(trackPath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	found := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		found[strings.ToLower(e.Name())] = e.Name()
	}
	for _, name := range coverNames {
		if actual, ok := found[name]; ok {
			u := url.URL{Scheme: "file", Path: filepath.Join(dir, actual)}
			return u.String()
		}
	}
	return ""
}
