package app

import (
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/hush/internal/errmsg"
)

// saveSettings stores the current toggles. Stealth and play mode are read
// back from the session so the store matches what is in effect.
func (m *Model) saveSettings() {
	if m.store == nil {
		return
	}
	m.settings.Stealth = m.snap.Stealth
	m.settings.PlayMode = m.snap.Mode
	if err := m.store.SaveSettings(m.settings); err != nil {
		zlog.Error().Err(err).Msg("saving settings failed")
		m.setError(errmsg.Format(errmsg.OpSettingsSave, err))
	}
}
