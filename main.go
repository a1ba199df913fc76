package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/hush/internal/app"
	"github.com/llehouerou/hush/internal/config"
	"github.com/llehouerou/hush/internal/errmsg"
	"github.com/llehouerou/hush/internal/logger"
	"github.com/llehouerou/hush/internal/mpris"
	"github.com/llehouerou/hush/internal/notify"
	"github.com/llehouerou/hush/internal/playback"
	"github.com/llehouerou/hush/internal/player"
	"github.com/llehouerou/hush/internal/playlist"
	"github.com/llehouerou/hush/internal/poller"
	"github.com/llehouerou/hush/internal/presenter"
	"github.com/llehouerou/hush/internal/state"
	"github.com/llehouerou/hush/internal/stderr"
)

const appName = "Hush"

func main() {
	if err := run(); err != nil {
		stderr.WriteOriginal(errmsg.Format(errmsg.OpInitialize, err) + "\n")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	closeLog, err := logger.Init(logger.Config{
		Output: cfg.Log.Output,
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
	})
	if err != nil {
		return errors.Wrap(err, "initializing logger")
	}
	defer closeLog()

	// Capture C library output before the audio device is opened
	if err := stderr.Start(); err != nil {
		zlog.Warn().Err(err).Msg("stderr capture unavailable")
	}
	defer stderr.Stop()

	store, err := state.Open()
	if err != nil {
		return errors.Wrap(err, "opening state")
	}
	defer store.Close()

	settings, err := store.LoadSettings()
	if err != nil {
		zlog.Warn().Err(err).Msg(errmsg.Format(errmsg.OpSettingsLoad, err))
		settings = state.DefaultSettings()
	}

	session := playback.New(player.New(), playlist.NewQueue(), playback.Options{
		Mode:    settings.PlayMode,
		Stealth: settings.Stealth,
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			zlog.Error().Err(err).Msg("session stopped")
		}
	}()
	defer session.Close()

	masks := presenter.Masks{Title: cfg.Stealth.Title, Artist: cfg.Stealth.Artist}

	// Observers are released before the session goes away.
	poll := poller.New(session, cfg.PollInterval())
	defer poll.Close()

	ticks := app.NewTickObserver()
	poll.Register(ticks)

	if cfg.MPRIS.Enabled {
		adapter, err := mpris.New(session, mpris.Options{
			Identity:        appName,
			StealthIdentity: cfg.Stealth.Identity,
			Masks:           masks,
		})
		if err != nil {
			zlog.Warn().Err(err).Msg("mpris unavailable")
		} else {
			defer adapter.Close()
		}
	}

	if cfg.Notify.Enabled {
		notifier, err := notify.New()
		if err != nil {
			zlog.Warn().Err(err).Msg("notifications unavailable")
		} else {
			nowPlaying := notify.NewNowPlaying(notifier, notify.NowPlayingOptions{
				AppName:        appName,
				StealthAppName: cfg.Stealth.Identity,
				Masks:          masks,
				Timeout:        cfg.NotifyTimeout(),
			})
			unregister := poll.Register(nowPlaying)
			defer nowPlaying.Clear()
			defer unregister()
		}
	}

	model := app.New(app.Options{
		Service:  session,
		Store:    store,
		Settings: settings,
		Folder:   cfg.MusicFolder,
		Masks:    masks,
		Ticks:    ticks,
	})

	zlog.Info().Bool("stealth", settings.Stealth).Str("mode", settings.PlayMode.String()).Msg("starting")
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return errors.Wrap(err, "running program")
	}
	return nil
}
