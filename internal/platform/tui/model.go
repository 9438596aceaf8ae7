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

	"github.com/vovakirdan/ecosort/internal/core"
	"github.com/vovakirdan/ecosort/internal/registry"
	"github.com/vovakirdan/ecosort/internal/storage"
)

// footerHeight is the number of rows reserved below the game for help.
const footerHeight = 1

var screenshotKey = key.NewBinding(key.WithKeys("ctrl+s"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether the current run has been recorded
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

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW

	game.Reset(cfg)
	m.gameState = game.State()
	logger.Info("game started", "mode", game.ID(), "seed", cfg.Seed, "tps", cfg.TickRate)

	return m
}

// gameHeight is the number of rows available to the game itself.
func gameHeight(h int) int {
	return core.Max(h-footerHeight, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, screenshotKey) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.recordAbandoned()
		m.logger.Info("quit", "screen", m.gameState.Screen, "score", m.gameState.Score)
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse converts terminal cells into field coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev, ok := MapMouse(msg, m.screen.Width(), m.screen.Height(), m.game.FieldSize())
	if ok {
		m.inputFrame.Pointers = append(m.inputFrame.Pointers, ev)
	}
	return m, nil
}

// handleResize processes window resize events.
// The simulation runs in field units, so the game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width
	m.game.Resize(msg.Width, gameHeight(msg.Height))

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.logTransitions(prev, m.gameState)

	// Record the run once when it finishes
	if m.gameState.GameOver && !prev.GameOver && !m.runSaved {
		outcome := storage.OutcomeDefeat
		if m.gameState.Won {
			outcome = storage.OutcomeVictory
		}
		m.saveRun(outcome)
	}
	if !m.gameState.GameOver && m.gameState.Screen == "start" {
		m.runSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logTransitions reports screen and phase changes.
func (m Model) logTransitions(prev, cur core.GameState) {
	if prev.Screen != cur.Screen {
		m.logger.Info("screen changed", "from", prev.Screen, "to", cur.Screen, "score", cur.Score)
	}
	if prev.Phase != cur.Phase {
		m.logger.Debug("phase changed", "from", prev.Phase, "to", cur.Phase)
	}
	if prev.Paused != cur.Paused {
		m.logger.Debug("pause toggled", "paused", cur.Paused)
	}
	if prev.Muted != cur.Muted {
		m.logger.Debug("mute toggled", "muted", cur.Muted)
	}
}

// inRun reports whether a run is underway and not yet finished.
func inRun(s core.GameState) bool {
	if s.GameOver {
		return false
	}
	switch s.Screen {
	case "gameplay", "transition", "boss-intro", "boss-fight":
		return true
	}
	return false
}

// recordAbandoned saves a run the player walked away from.
func (m *Model) recordAbandoned() {
	if inRun(m.gameState) && !m.runSaved {
		m.saveRun(storage.OutcomeAbandoned)
	}
}

// saveRun stores the current result. Empty runs are not recorded.
func (m *Model) saveRun(outcome storage.Outcome) {
	m.runSaved = true
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	id, err := m.store.SaveRun(m.game.ID(), m.gameState.Score, m.gameState.Phase, outcome)
	if err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "id", id, "score", m.gameState.Score, "phase", m.gameState.Phase, "outcome", outcome)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".ecosort", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Hover and clicks both matter
	)

	_, err := p.Run()
	return err
}
