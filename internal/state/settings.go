package state

import (
	"database/sql"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/llehouerou/hush/internal/playlist"
)

// Settings are the user toggles persisted between runs.
type Settings struct {
	Stealth     bool
	PlayMode    playlist.PlayMode
	Privacy     bool // list names rendered as ordinals
	HeadsetOnly bool
	RootFolder  string // last opened music folder, empty for the configured one
}

// DefaultSettings returns the settings used when nothing was saved yet.
// Names are private by default.
func DefaultSettings() Settings {
	return Settings{
		PlayMode: playlist.PlayModeNone,
		Privacy:  true,
	}
}

const (
	keyStealth     = "stealth_mode"
	keyPlayMode    = "play_mode"
	keyPrivacy     = "privacy_mode"
	keyHeadsetOnly = "headset_only"
	keyRootFolder  = "root_folder"
)

func loadSettings(db *sql.DB) (Settings, error) {
	s := DefaultSettings()

	rows, err := db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return s, errors.Wrap(err, "querying settings")
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			return s, errors.Wrap(err, "scanning setting")
		}
		if !value.Valid {
			continue
		}
		apply(&s, key, value.String)
	}
	if err := rows.Err(); err != nil {
		return s, errors.Wrap(err, "reading settings")
	}
	return s, nil
}

// apply sets one stored value on s. Unknown keys and unparsable values are
// ignored so the default stays in place.
func apply(s *Settings, key, value string) {
	switch key {
	case keyStealth:
		s.Stealth = parseBool(value, s.Stealth)
	case keyPlayMode:
		s.PlayMode = playlist.ParsePlayMode(value)
	case keyPrivacy:
		s.Privacy = parseBool(value, s.Privacy)
	case keyHeadsetOnly:
		s.HeadsetOnly = parseBool(value, s.HeadsetOnly)
	case keyRootFolder:
		s.RootFolder = value
	}
}

func parseBool(value string, fallback bool) bool {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}

func saveSettings(db *sql.DB, s Settings) error {
	values := map[string]string{
		keyStealth:     strconv.FormatBool(s.Stealth),
		keyPlayMode:    s.PlayMode.String(),
		keyPrivacy:     strconv.FormatBool(s.Privacy),
		keyHeadsetOnly: strconv.FormatBool(s.HeadsetOnly),
		keyRootFolder:  s.RootFolder,
	}

	err := withTx(db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for key, value := range values {
			if _, err := stmt.Exec(key, value); err != nil {
				return errors.Wrapf(err, "saving %s", key)
			}
		}
		return nil
	})
	return errors.Wrap(err, "saving settings")
}
