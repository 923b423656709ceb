package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// startLeveler is implemented by modes with selectable starting levels.
type startLeveler interface {
	SetStartLevel(level int)
}

// SessionModel manages the full session flow: menu -> game -> menu.
// This is the top-level model for SSH sessions and for local play without a mode.
type SessionModel struct {
	cfg      config.Config
	rc       core.RuntimeConfig
	theme    Theme
	logger   *log.Logger
	menu     MenuModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a session that starts at the menu.
func NewSessionModel(cfg config.Config, rc core.RuntimeConfig, theme Theme, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		cfg:    cfg,
		rc:     rc,
		theme:  theme,
		logger: logger,
		menu:   NewMenuModel(cfg, rc, theme),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.rc.ScreenW = wsm.Width
		m.rc.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// The menu's own quit command is dropped: the session keeps running.
	if sel := m.menu.Selected(); sel != nil {
		return m.startGame(*sel)
	}

	return m, cmd
}

// startGame creates the selected mode and switches to it.
func (m SessionModel) startGame(sel Selection) (tea.Model, tea.Cmd) {
	game, err := registry.Create(sel.ModeID, m.cfg)
	if err != nil {
		// Shouldn't happen since menu only shows registered modes
		m.logger.Error("cannot start mode", "mode", sel.ModeID, "error", err)
		m.menu = NewMenuModel(m.cfg, m.rc, m.theme)
		return m, nil
	}
	if sel.Level > 0 {
		if sl, ok := game.(startLeveler); ok {
			sl.SetStartLevel(sel.Level)
		}
	}

	model := NewModel(game, m.rc, m.theme, m.logger)
	model.embedded = true
	m.game = &model

	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.menu = NewMenuModel(m.cfg, m.rc, m.theme)
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// RunSession runs menu -> game -> menu on the local terminal until the user quits.
func RunSession(cfg config.Config, rc core.RuntimeConfig, theme Theme, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, rc, theme, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
