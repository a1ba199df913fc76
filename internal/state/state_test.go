package state

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/hush/internal/playlist"
)

func openTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := OpenPath(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestLoadSettings_Empty(t *testing.T) {
	m := openTestManager(t)

	s, err := m.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	assert.True(t, s.Privacy, "names are private by default")
}

func TestSaveAndLoadSettings(t *testing.T) {
	m := openTestManager(t)

	want := Settings{
		Stealth:     true,
		PlayMode:    playlist.PlayModeRepeatAll,
		Privacy:     false,
		HeadsetOnly: true,
		RootFolder:  "/srv/music",
	}
	require.NoError(t, m.SaveSettings(want))

	got, err := m.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveSettings_Update(t *testing.T) {
	m := openTestManager(t)

	first := DefaultSettings()
	first.Stealth = true
	require.NoError(t, m.SaveSettings(first))

	second := first
	second.Stealth = false
	second.PlayMode = playlist.PlayModeRepeatOne
	require.NoError(t, m.SaveSettings(second))

	got, err := m.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, second, got)

	var count int
	require.NoError(t, m.DB().QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&count))
	assert.Equal(t, 5, count, "one row per key")
}

func TestLoadSettings_IgnoresBadValues(t *testing.T) {
	m := openTestManager(t)
	_, err := m.DB().Exec(`
		INSERT INTO settings (key, value) VALUES
			('stealth_mode', 'maybe'),
			('privacy_mode', 'false'),
			('play_mode', 'shuffle'),
			('headset_only', NULL),
			('volume', '80')
	`)
	require.NoError(t, err)

	s, err := m.LoadSettings()
	require.NoError(t, err)
	assert.False(t, s.Stealth)
	assert.False(t, s.Privacy)
	assert.Equal(t, playlist.PlayModeNone, s.PlayMode)
	assert.False(t, s.HeadsetOnly)
}

func TestOpenPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hush.db")

	m, err := OpenPath(path)
	require.NoError(t, err)
	want := DefaultSettings()
	want.HeadsetOnly = true
	require.NoError(t, m.SaveSettings(want))
	require.NoError(t, m.Close())

	reopened, err := OpenPath(path)
	require.NoError(t, err)
	defer reopened.Close()
	got, err := reopened.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWithTx_Rollback(t *testing.T) {
	m := openTestManager(t)
	testErr := errors.New("test error")

	err := withTx(m.DB(), func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO settings (key, value) VALUES ('k', 'v')`); err != nil {
			return err
		}
		return testErr
	})
	require.ErrorIs(t, err, testErr)

	var count int
	require.NoError(t, m.DB().QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&count))
	assert.Equal(t, 0, count, "insert rolled back")
}

func TestMock(t *testing.T) {
	m := NewMock()

	s, err := m.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)

	s.Stealth = true
	require.NoError(t, m.SaveSettings(s))
	got, _ := m.LoadSettings()
	assert.True(t, got.Stealth)
	assert.Equal(t, 1, m.Saves())

	m.SetSaveError(errors.New("disk full"))
	assert.Error(t, m.SaveSettings(Settings{}))
	got, _ = m.LoadSettings()
	assert.True(t, got.Stealth, "failed save keeps previous settings")

	require.NoError(t, m.Close())
	assert.True(t, m.Closed())
}
