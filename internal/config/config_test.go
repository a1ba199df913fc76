//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/music/library/albums",
			expected: filepath.Join(home, "music", "library", "albums"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/music",
			expected: "/usr/local/music",
		},
		{
			name:     "relative path unchanged",
			input:    "music/albums",
			expected: "music/albums",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
		{
			name:     "tilde with slash",
			input:    "~/",
			expected: filepath.Join(home, ""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}
	if want := filepath.Join(xdg.ConfigHome, "hush", "config.toml"); paths[0] != want {
		t.Errorf("first config path = %q, want %q", paths[0], want)
	}
	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.PollInterval())
	assert.Equal(t, "Notification", cfg.Stealth.Title)
	assert.Equal(t, " ", cfg.Stealth.Artist)
	assert.Equal(t, "Notifications", cfg.Stealth.Identity)
	assert.Equal(t, "file", cfg.Log.Output)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(xdg.StateHome, "hush", "hush.log"), cfg.Log.File)
	assert.True(t, cfg.MPRIS.Enabled)
	assert.True(t, cfg.Notify.Enabled)
	assert.Equal(t, 3*time.Second, cfg.NotifyTimeout())
	assert.NotContains(t, cfg.MusicFolder, "~")
}

func TestLoadFrom_Overrides(t *testing.T) {
	path := writeConfig(t, `
music_folder = "/srv/music"
poll_interval_ms = 250

[stealth]
title = "Updates"

[log]
output = "stderr"
level = "debug"

[mpris]
enabled = false

[notify]
enabled = false
timeout_ms = 500
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/music", cfg.MusicFolder)
	assert.Equal(t, 250*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, "Updates", cfg.Stealth.Title)
	assert.Equal(t, "Notifications", cfg.Stealth.Identity, "unset keys keep defaults")
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.MPRIS.Enabled, "explicit false is kept")
	assert.False(t, cfg.Notify.Enabled)
	assert.Equal(t, 500*time.Millisecond, cfg.NotifyTimeout())
}

func TestLoadFrom_LastFileWins(t *testing.T) {
	first := writeConfig(t, "poll_interval_ms = 200\nmusic_folder = \"/a\"\n")
	second := writeConfig(t, "poll_interval_ms = 300\n")

	cfg, err := LoadFrom(first, second)
	require.NoError(t, err)

	assert.Equal(t, 300*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, "/a", cfg.MusicFolder)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"poll interval too small", "poll_interval_ms = 10"},
		{"poll interval too large", "poll_interval_ms = 60000"},
		{"unknown log output", "[log]\noutput = \"syslog\""},
		{"unknown log level", "[log]\nlevel = \"loud\""},
		{"empty stealth title", "[stealth]\ntitle = \"\""},
		{"malformed toml", "poll_interval_ms = = 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
