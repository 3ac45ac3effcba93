package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/epic-rps/internal/core"
	"github.com/vovakirdan/epic-rps/internal/multiplayer"
	"github.com/vovakirdan/epic-rps/internal/registry"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)
	menuItemStyle   = lipgloss.NewStyle().PaddingLeft(2)
	menuCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	menuMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// menuKeys is the subset of KeyMap shown in the menu's help line.
type menuKeys struct {
	KeyMap
}

func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// MenuItem is one selectable mode.
type MenuItem struct {
	GameID string
	Title  string
	Mode   multiplayer.MatchMode
}

// MenuModel lets the player pick a registered mode.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	config   core.RuntimeConfig
	keys     menuKeys
	help     help.Model
	quitting bool
	selected *MenuItem
}

// NewMenuModel lists every registered mode.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	infos := registry.List()
	items := make([]MenuItem, len(infos))
	for i, info := range infos {
		items[i] = MenuItem{GameID: info.ID, Title: info.Title, Mode: info.Mode}
	}

	return MenuModel{
		items:  items,
		config: cfg,
		keys:   menuKeys{DefaultKeyMap()},
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update moves the cursor, wrapping at both ends.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		n := len(m.items)
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit
		case n == 0:
		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor + n - 1) % n
		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % n
		case key.Matches(msg, m.keys.Select):
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		}
	}
	return m, nil
}

// View draws the list centered in the terminal.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{menuTitleStyle.Render("R O C K   P A P E R   S C I S S O R S")}
	if len(m.items) == 0 {
		lines = append(lines, menuMutedStyle.Render("No modes available."))
	}
	for i, item := range m.items {
		label := item.Title
		if i == m.cursor {
			lines = append(lines, menuCursorStyle.Render("> "+label))
			continue
		}
		lines = append(lines, menuItemStyle.Render(label))
	}
	lines = append(lines, "", menuMutedStyle.Render(m.help.View(m.keys)))

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return body
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

// MenuResult is what the player chose. GameID is empty when Quit is set.
type MenuResult struct {
	GameID string
	Mode   multiplayer.MatchMode
	Config core.RuntimeConfig
	Quit   bool
}

// result converts the final model into a MenuResult.
func (m MenuModel) result() MenuResult {
	res := MenuResult{Config: m.config}
	if m.quitting || m.selected == nil {
		res.Quit = true
		return res
	}
	res.GameID = m.selected.GameID
	res.Mode = m.selected.Mode
	return res
}

// RunMenu shows the menu until the player picks a mode or quits.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	if m, ok := final.(MenuModel); ok {
		return m.result(), nil
	}
	return MenuResult{Config: cfg, Quit: true}, nil
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
