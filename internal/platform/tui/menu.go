package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// campaignID is the registry ID the level picker starts.
const campaignID = "campaign"

// Selection holds the user's choice from the menu.
type Selection struct {
	ModeID string
	Level  int // 0 = start from the beginning, otherwise a 1-based campaign level
}

// menuItem is one row of the mode list. An empty modeID opens the level picker.
type menuItem struct {
	modeID string
	title  string
	desc   string
}

// MenuModel lets users choose a game mode and, for the campaign, a starting level.
type MenuModel struct {
	items         []menuItem
	levels        []config.LevelConfig
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	theme         Theme
	keys          KeyMap
	selected      *Selection
	quitting      bool
}

// NewMenuModel creates a menu listing every registered mode.
func NewMenuModel(cfg config.Config, rc core.RuntimeConfig, theme Theme) MenuModel {
	modes := registry.List()
	items := make([]menuItem, 0, len(modes)+1)
	for _, info := range modes {
		items = append(items, menuItem{modeID: info.ID, title: info.Title, desc: info.Description})
	}
	if registry.Exists(campaignID) && len(cfg.Campaign.Levels) > 1 {
		items = append(items, menuItem{title: "Select Level...", desc: "Start the campaign from any level"})
	}

	return MenuModel{
		items:  items,
		levels: cfg.Campaign.Levels,
		width:  rc.ScreenW,
		height: rc.ScreenH,
		theme:  theme,
		keys:   DefaultKeyMap(),
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keys.MenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleModeSelectKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MenuModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		if item.modeID == "" {
			m.inLevelSelect = true
			m.levelCursor = 0
			return m, nil
		}
		m.selected = &Selection{ModeID: item.modeID}
		return m, tea.Quit
	}

	return m, nil
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.selected = &Selection{ModeID: campaignID, Level: m.levelCursor + 1}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the mode or level list.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m MenuModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Style(core.ColorYellow).Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.title, m.width))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		desc := m.theme.Style(core.ColorGray).Render(m.items[m.cursor].desc)
		b.WriteString(centerText(desc, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Q: Quit", m.width))

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Style(core.ColorYellow).Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%2d. %-18s (Target: %d)", cursor, i+1, lvl.Name, lvl.Target)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
