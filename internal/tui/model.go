package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"go-jump/internal/game"
	"go-jump/internal/player"
	"go-jump/internal/scoring"
	"go-jump/internal/state"
)

// CallbackMsg carries a timer callback onto the event loop.
type CallbackMsg func()

// Post returns a function that hands callbacks to p. Pass it to sched.Loop.Attach.
func Post(p *tea.Program) func(func()) {
	return func(f func()) {
		p.Send(CallbackMsg(f))
	}
}

// Music reports whether the background track is on.
type Music interface {
	Playing() bool
}

// BestLookup returns the furthest recorded run for a road length.
type BestLookup interface {
	Best(length int) *scoring.ScoreHistoryEntry
}

// Options wires the model to an already constructed game.
type Options struct {
	Controller *game.Controller
	Player     *player.Player
	Scene      *Scene
	HUD        *HUD
	Music      Music
	Scores     BestLookup
	RoadLength int
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	ctrl   *game.Controller
	player *player.Player
	scene  *Scene
	hud    *HUD
	music  Music
	scores BestLookup
	length int

	keys     KeyMap
	help     help.Model
	width    int
	quitting bool
}

func NewModel(opts Options) *Model {
	return &Model{
		ctrl:   opts.Controller,
		player: opts.Player,
		scene:  opts.Scene,
		hud:    opts.HUD,
		music:  opts.Music,
		scores: opts.Scores,
		length: opts.RoadLength,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  80,
	}
}

// Init enters the start menu.
func (m *Model) Init() tea.Cmd {
	m.ctrl.Start()
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CallbackMsg:
		if !m.quitting {
			msg()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.ctrl.End()
		m.ctrl.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Start):
		if m.ctrl.State() != state.Playing {
			m.ctrl.StartPlaying()
		}
	case key.Matches(msg, m.keys.StepShort):
		if m.ctrl.State() == state.Playing {
			m.player.Jump(player.StepShort)
		}
	case key.Matches(msg, m.keys.StepLong):
		if m.ctrl.State() == state.Playing {
			m.player.Jump(player.StepLong)
		}
	}
	return m, nil
}

// Quitting reports whether the user asked to leave.
func (m *Model) Quitting() bool {
	return m.quitting
}
