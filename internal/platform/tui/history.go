package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/epic-rps/internal/multiplayer"
	"github.com/vovakirdan/epic-rps/internal/rps"
)

// History layout constants
const (
	minWidthForSummary = 72 // Minimum width to show the tally box beside the table
	summaryWidth       = 18
)

// HistoryKeyMap defines the key bindings for the round history view.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("tab", "esc", "b"),
			key.WithHelp("tab/esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryView shows the rounds played this session. It is embedded in
// Model and rebuilt from the game's tally whenever it is opened.
type HistoryView struct {
	mode   multiplayer.MatchMode
	tally  rps.Tally
	table  table.Model
	help   help.Model
	keys   HistoryKeyMap
	width  int
	height int
}

// NewHistoryView creates an empty history view.
func NewHistoryView(mode multiplayer.MatchMode, width, height int) HistoryView {
	h := help.New()
	h.ShowAll = false

	v := HistoryView{
		mode:   mode,
		help:   h,
		keys:   DefaultHistoryKeyMap(),
		width:  width,
		height: height,
	}
	v.table = v.createTable()
	return v
}

// createTable creates a new table sized for the current terminal.
func (v *HistoryView) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: v.firstName(), Width: 10},
		{Title: v.mode.Opponent(), Width: 10},
		{Title: "Result", Width: 14},
		{Title: "Time", Width: 10},
	}

	height := v.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (v *HistoryView) firstName() string {
	if v.mode == multiplayer.MatchModeVsCPU {
		return "You"
	}
	return multiplayer.Player1.String()
}

// SetTally replaces the displayed rounds. Newest rounds are listed first.
func (v *HistoryView) SetTally(t rps.Tally) {
	v.tally = t
	v.updateTableRows()
}

func (v *HistoryView) updateTableRows() {
	rows := make([]table.Row, 0, len(v.tally.History))
	for i := len(v.tally.History) - 1; i >= 0; i-- {
		rec := v.tally.History[i]
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", rec.Number),
			rec.First.String(),
			rec.Second.String(),
			v.resultText(rec),
			rec.At.Format("15:04:05"),
		})
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
}

// resultText names the winner of a recorded round.
func (v *HistoryView) resultText(rec rps.Record) string {
	switch rec.Outcome {
	case rps.FirstWins:
		return v.firstName() + " won"
	case rps.SecondWins:
		return v.mode.Opponent() + " won"
	case rps.Tie:
		return "tie"
	default:
		return "-"
	}
}

// Resize adapts the view to a new terminal size.
func (v *HistoryView) Resize(width, height int) {
	v.width = width
	v.height = height
	v.table = v.createTable()
	v.updateTableRows()
	v.help.Width = width
}

// Update handles scrolling. It reports whether the user asked to leave the
// view and whether they asked to quit.
func (v *HistoryView) Update(msg tea.KeyMsg) (back, quit bool, cmd tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return false, true, nil
	case key.Matches(msg, v.keys.Back):
		return true, false, nil
	}

	v.table, cmd = v.table.Update(msg)
	return false, false, cmd
}

// View renders the history screen.
func (v HistoryView) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("ROUND HISTORY", v.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	body := v.table.View()
	if len(v.tally.History) == 0 {
		body = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Render("No rounds played yet.")
	}
	tableRendered := tableStyle.Render(body)

	if v.width >= minWidthForSummary {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, v.renderSummary(), "  ", tableRendered))
	} else {
		b.WriteString(v.summaryLine())
		b.WriteString("\n")
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(v.help.View(v.keys)))

	return b.String()
}

// renderSummary renders the tally box shown beside the table.
func (v HistoryView) renderSummary() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(summaryWidth).
		Padding(0, 1)

	var s strings.Builder
	s.WriteString("Tally\n")
	s.WriteString(strings.Repeat("-", summaryWidth-4))
	s.WriteString("\n")
	fmt.Fprintf(&s, "%-9s%d\n", v.firstName(), v.tally.FirstWins)
	fmt.Fprintf(&s, "%-9s%d\n", v.mode.Opponent(), v.tally.SecondWins)
	fmt.Fprintf(&s, "%-9s%d\n", "Ties", v.tally.Ties)
	fmt.Fprintf(&s, "%-9s%d", "Rounds", v.tally.Rounds())

	return boxStyle.Render(s.String())
}

// summaryLine is the narrow-terminal form of renderSummary.
func (v HistoryView) summaryLine() string {
	return fmt.Sprintf("%s %d | %s %d | Ties %d",
		v.firstName(), v.tally.FirstWins, v.mode.Opponent(), v.tally.SecondWins, v.tally.Ties)
}
