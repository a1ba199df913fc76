//go:build !linux

package mpris

import (
	"github.com/llehouerou/hush/internal/playback"
	"github.com/llehouerou/hush/internal/presenter"
)

// Options configures what the adapter shows.
type Options struct {
	Identity        string
	StealthIdentity string
	Masks           presenter.Masks
}

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ playback.Service, _ Options) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
