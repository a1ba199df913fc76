// Package app is the terminal user interface of the player.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hush/internal/keymap"
	"github.com/llehouerou/hush/internal/playback"
	"github.com/llehouerou/hush/internal/playlist"
	"github.com/llehouerou/hush/internal/presenter"
	"github.com/llehouerou/hush/internal/state"
	"github.com/llehouerou/hush/internal/ui/list"
)

// View is one of the three lists of the TUI.
type View int

const (
	ViewFiles View = iota
	ViewPlaylist
	ViewQueue
)

var viewNames = [...]string{"Files", "Playlist", "Queue"}

func (v View) String() string {
	if v < ViewFiles || v > ViewQueue {
		return "Unknown"
	}
	return viewNames[v]
}

// next cycles Files -> Playlist -> Queue -> Files.
func (v View) next() View {
	return (v + 1) % View(len(viewNames))
}

// Options are the collaborators of the model.
type Options struct {
	Service  playback.Service
	Store    state.Interface
	Settings state.Settings // as loaded at startup
	Folder   string         // music folder used when Settings.RootFolder is empty
	Masks    presenter.Masks
	Ticks    *TickObserver // registered on the poller by the caller
}

// Model is the root application model.
type Model struct {
	service  playback.Service
	store    state.Interface
	settings state.Settings
	masks    presenter.Masks
	keys     *keymap.Resolver
	help     help.Model
	showHelp bool

	sub   *playback.Subscription
	ticks *TickObserver
	snap  playback.Snapshot

	view     View
	folder   string
	files    list.Model[playlist.Track]
	playlist *playlist.Playlist
	plView   list.Model[playlist.Track]
	queue    list.Model[playlist.Track]

	prompt    textinput.Model
	prompting bool

	status    string
	statusErr bool

	width  int
	height int
}

// New creates the application model. The service must already be running.
func New(opts Options) Model {
	folder := opts.Settings.RootFolder
	if folder == "" {
		folder = opts.Folder
	}

	ti := textinput.New()
	ti.Prompt = "Folder: "
	ti.CharLimit = 4096

	m := Model{
		service:  opts.Service,
		store:    opts.Store,
		settings: opts.Settings,
		masks:    opts.Masks,
		keys:     keymap.NewResolver(keymap.Bindings),
		help:     help.New(),
		sub:      opts.Service.Subscribe(),
		ticks:    opts.Ticks,
		snap:     opts.Service.Snapshot(),
		folder:   folder,
		files:    list.New[playlist.Track](list.ScrollMargin),
		playlist: playlist.NewPlaylist(),
		plView:   list.New[playlist.Track](list.ScrollMargin),
		queue:    list.New[playlist.Track](list.ScrollMargin),
		prompt:   ti,
	}
	m.queue.SetItems(opts.Service.QueueTracks())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadFolderCmd(m.folder),
		m.WatchServiceEvents(),
		m.WatchTicks(),
	)
}

// Folder returns the folder shown in the files view.
func (m Model) Folder() string {
	return m.folder
}

// ActiveView returns the view currently shown.
func (m Model) ActiveView() View {
	return m.view
}

// Settings returns the toggles as last saved.
func (m Model) Settings() state.Settings {
	return m.settings
}

// Status returns the status line message.
func (m Model) Status() string {
	return m.status
}

// current returns the list of the active view.
func (m *Model) current() *list.Model[playlist.Track] {
	switch m.view {
	case ViewPlaylist:
		return &m.plView
	case ViewQueue:
		return &m.queue
	case ViewFiles:
		return &m.files
	}
	return &m.files
}
