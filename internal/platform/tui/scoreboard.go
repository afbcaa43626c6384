package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

const (
	scoreboardRounds = 50 // Rounds listed per mode
	statsWidth       = 24
	stackStatsBelow  = 78 // Narrower terminals put the stats under the table
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Scroll key.Binding
	Mode   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Mode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Scroll, k.Mode}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "k", "j"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Mode: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "switch mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoreboardExit records how the scoreboard was left.
type scoreboardExit int

const (
	scoreboardOpen scoreboardExit = iota
	scoreboardBack
	scoreboardQuit
)

// ScoreboardModel lists the best rounds of one game mode beside its lifetime stats.
type ScoreboardModel struct {
	store *storage.Store
	modes []registry.GameInfo
	mode  int

	rounds []storage.Round
	stats  *storage.GameStats
	err    error

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
	exit   scoreboardExit
}

// NewScoreboardModel creates a scoreboard showing the first registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		modes:  registry.List(),
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = newRoundTable(height)
	m.load()
	return m
}

// newRoundTable builds the round list sized to the terminal height.
func newRoundTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Lines", Width: 5},
			{Title: "Blocks", Width: 6},
			{Title: "Time", Width: 6},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 5)),
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

// Mode returns the ID of the game mode on screen, or "" when none is registered.
func (m ScoreboardModel) Mode() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// load reads the rounds and stats of the current mode.
func (m *ScoreboardModel) load() {
	m.rounds, m.stats, m.err = nil, nil, nil

	if id := m.Mode(); m.store != nil && id != "" {
		m.rounds, m.err = m.store.TopScores(id, scoreboardRounds)
		if m.err == nil {
			m.stats, m.err = m.store.GetGameStats(id)
		}
	}

	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Lines),
			strconv.Itoa(r.Blocks),
			formatDuration(r.Duration),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.exit = scoreboardQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.exit = scoreboardBack
			return m, tea.Quit
		case key.Matches(msg, m.keys.Mode):
			if len(m.modes) > 1 {
				step := 1
				switch msg.String() {
				case "shift+tab", "left", "h":
					step = -1
				}
				m.mode = core.Wrap(m.mode+step, len(m.modes))
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(msg.Height-10, 5))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.exit != scoreboardOpen {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(menuTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.modeTabs(), m.width))
	b.WriteString("\n\n")

	rounds := panelStyle.Render(m.roundList())
	stats := panelStyle.Width(statsWidth).Render(m.statsPanel())
	if m.width >= stackStatsBelow {
		b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, rounds, " ", stats), m.width))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rounds, stats))
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Could not read scores: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// modeTabs renders every mode title, the current one highlighted.
func (m ScoreboardModel) modeTabs() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			tabs[i] = menuSelectedStyle.Render("[" + g.Title + "]")
		} else {
			tabs[i] = menuDimStyle.Render(" " + g.Title + " ")
		}
	}
	return strings.Join(tabs, "  ")
}

func (m ScoreboardModel) roundList() string {
	if len(m.rounds) == 0 {
		return menuDimStyle.Italic(true).Padding(2, 4).
			Render("No rounds recorded yet.\nPlay a round to set a high score!")
	}
	return m.table.View()
}

// statsPanel renders the lifetime totals of the current mode.
func (m ScoreboardModel) statsPanel() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return menuDimStyle.Render("No stats yet")
	}

	s := m.stats
	lines := []string{
		menuTitleStyle.Render("Stats"),
		fmt.Sprintf("Rounds   %d", s.GamesCount),
		fmt.Sprintf("Best     %d", s.HighScore),
		fmt.Sprintf("Average  %.0f", s.AvgScore),
		fmt.Sprintf("Lines    %d", s.TotalLines),
		fmt.Sprintf("Most     %d lines", s.BestLines),
		fmt.Sprintf("Played   %s", formatDuration(s.PlayTime)),
	}
	if !s.LastPlayed.IsZero() {
		lines = append(lines, "Last     "+s.LastPlayed.Format("Jan 02 15:04"))
	}
	return strings.Join(lines, "\n")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.exit == scoreboardBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.exit == scoreboardQuit
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	finalModel, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}

// formatDuration renders a round length as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
