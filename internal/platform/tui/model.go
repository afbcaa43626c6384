package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// helpHeight is the number of rows reserved under the game for the key help.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	rounds     int // Rounds finished this session
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	logger.Info("round started", "game", game.ID(), "seed", cfg.Seed)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FrameDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize resizes the screen buffer. The round keeps running;
// Render shows a notice while the window is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case !prev.GameOver && m.gameState.GameOver:
		m.rounds++
		m.saveRound()
	case prev.GameOver && !m.gameState.GameOver:
		m.logger.Info("round started", "game", m.game.ID(), "high_score", m.gameState.HighScore)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.FrameDuration())
}

// saveRound records the round that just ended. Storage errors are logged
// and the game continues.
func (m Model) saveRound() {
	st := m.gameState
	m.logger.Info("round ended",
		"game", m.game.ID(),
		"score", st.Score,
		"lines", st.Lines,
		"blocks", st.Blocks,
		"elapsed", st.Elapsed.Round(time.Second),
	)

	if m.store == nil || st.Score == 0 {
		return
	}
	id, err := m.store.SaveRound(storage.Round{
		GameID:   m.game.ID(),
		Score:    st.Score,
		Lines:    st.Lines,
		Blocks:   st.Blocks,
		Duration: st.Elapsed,
	})
	if err != nil {
		m.logger.Error("could not save round", "error", err)
		return
	}
	m.logger.Debug("round saved", "id", id)
}

// saveScreenshot writes the current screen to ~/.tetris/screenshots.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// GameState returns the state seen after the last frame.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Rounds returns how many rounds ended during the session.
func (m Model) Rounds() int {
	return m.rounds
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
