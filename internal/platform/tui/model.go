// Package tui provides the Bubble Tea integration for the 2048 game.
// It handles the terminal UI loop, input mapping, theming and the SSH server.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// resizer is implemented by games that can change screen size without
// starting over.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for playing one game mode.
// The game only advances on key presses: one key, one Step.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	theme      Theme
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	config     core.RuntimeConfig
	gameState  core.GameState
	showHelp   bool // Full-screen key help instead of the board
	quitting   bool
	backToMenu bool
	embedded   bool // Running inside SessionModel: Back returns to the menu
}

// NewModel creates a model and starts a new game.
// A zero seed is replaced with a time-based one.
func NewModel(game registry.Game, cfg core.RuntimeConfig, theme Theme, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		theme:  theme,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		config: cfg,
	}
	m.help.Width = cfg.ScreenW
	m.help.ShowAll = true

	m.game.Reset(cfg)
	m.gameState = m.game.State()
	m.logger.Debug("game started", "mode", game.ID(), "seed", cfg.Seed)
	return m
}

// Init sets the terminal title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.game.Title())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	}

	return m, nil
}

// handleKey maps the key to an action and steps the game once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}
	// Any other key closes the help panel, except quit.
	if m.showHelp && !key.Matches(msg, m.keys.Quit) {
		m.showHelp = false
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		// Leaving mid-game needs a pause first
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if !m.embedded {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	prev := m.gameState
	result := m.game.Step(core.FrameOf(action))
	m.gameState = result.State

	if result.Moved {
		m.logger.Debug("move", "mode", m.game.ID(), "action", action, "score", result.State.Score)
	}
	if action == core.ActionRestart {
		m.logger.Debug("restart", "mode", m.game.ID())
	}
	if result.State.GameOver && !prev.GameOver {
		m.logger.Info("game over", "mode", m.game.ID(), "score", result.State.Score)
	}

	return m, nil
}

// layout resizes the screen buffer and lets the game adapt.
func (m *Model) layout() {
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		title := m.theme.Style(core.ColorYellow).Render(m.game.Title() + " controls")
		panel := lipgloss.JoinVertical(lipgloss.Center, title, "", m.help.View(m.keys))
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, panel)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.theme)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, theme Theme, logger *log.Logger) error {
	model := NewModel(game, cfg, theme, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
