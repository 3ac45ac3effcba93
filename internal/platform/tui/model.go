// Package tui runs game modes inside a terminal with Bubble Tea.
// It handles the terminal UI loop, input mapping, and the history view.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/epic-rps/internal/core"
	"github.com/vovakirdan/epic-rps/internal/multiplayer"
	"github.com/vovakirdan/epic-rps/internal/registry"
	"github.com/vovakirdan/epic-rps/internal/rps"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tallier is implemented by games that keep a session tally.
type tallier interface {
	Tally() rps.Tally
}

var helpLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game mode.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	help        help.Model
	history     HistoryView
	showHistory bool
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		history:    NewHistoryView(game.Mode(), cfg.ScreenW, cfg.ScreenH),
		inputFrame: core.NewInputFrame(),
	}
}

// playHeight leaves the bottom row for the help line.
func playHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHistory {
			return m.handleHistoryKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionHistory:
		m.openHistory()
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	back, quit, cmd := m.history.Update(msg)
	switch {
	case quit:
		m.quitting = true
		return m, tea.Quit
	case back:
		m.showHistory = false
	}
	return m, cmd
}

// openHistory switches to the history view with the latest tally.
func (m *Model) openHistory() {
	if t, ok := m.game.(tallier); ok {
		m.history.SetTally(t.Tally())
	}
	m.showHistory = true
}

// handleResize processes window resize events. The session is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.history.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.history.View()
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpLineStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Run starts the Bubble Tea program for game and logs a summary once the
// terminal has been released.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	match := multiplayer.NewMatch(game.ID(), game.Mode())
	logger = logger.With("match", match.ID(), "game", match.GameID())
	logger.Debug("starting terminal session", "opponent", match.Mode().Opponent())

	p := tea.NewProgram(NewModel(game, cfg), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(Model); ok {
		st := m.State()
		logger.Info("session over", "rounds", st.Rounds, "won", st.Score)
	}
	return nil
}
