// internal/state/interface.go
package state

// Interface defines the settings store contract for dependency injection and testing.
type Interface interface {
	LoadSettings() (Settings, error)
	SaveSettings(s Settings) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
