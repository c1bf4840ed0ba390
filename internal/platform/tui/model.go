package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Rows reserved below the board for the help footer.
const (
	shortFooterRows = 1
	fullFooterRows  = 4
)

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// Model is the Bubble Tea model for one 2048 session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	sessionID  string
	color      bool
	status     string
	quitting   bool
	scoreSaved bool // Whether the current game has been recorded
	logger     *log.Logger
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-shortFooterRows, 1)),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		sessionID:  storage.NewSessionID(),
		color:      true,
	}
}

// WithColor toggles styled output.
func (m Model) WithColor(color bool) Model {
	m.color = color
	return m
}

// WithLogger reports failed score saves to l in addition to the status line.
func (m Model) WithLogger(l *log.Logger) Model {
	m.logger = l
	return m
}

// WithSessionID sets the identifier stored with each result.
func (m Model) WithSessionID(id string) Model {
	if id != "" {
		m.sessionID = id
	}
	return m
}

// SessionID returns the identifier stored with each result.
func (m Model) SessionID() string {
	return m.sessionID
}

// State returns the game state as of the last update.
func (m Model) State() core.GameState {
	return m.gameState
}

// boardRows is the screen height left for the game above the footer.
func (m Model) boardRows() int {
	footer := shortFooterRows
	if m.help.ShowAll {
		footer = fullFooterRows
	}
	return max(m.config.ScreenH-footer, 1)
}

func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.boardRows()
	return cfg
}

// layout resizes the screen buffer and the game to the current geometry.
func (m *Model) layout() {
	m.screen.Resize(m.config.ScreenW, m.boardRows())
	m.game.Resize(m.config.ScreenW, m.boardRows())
	m.gameState = m.game.State()
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
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

// handleKey processes keyboard input. Moves are applied immediately so fast
// typists never lose a turn between ticks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.status = "screenshot failed: " + err.Error()
		} else {
			m.status = "saved " + path
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.recordResult()
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Empty() {
		return m, nil
	}

	m.advance()
	return m, nil
}

// handleResize keeps the board and only updates the screen geometry.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.advance()
	return m, tickCmd(m.config.TickRate)
}

// advance feeds the pending input frame to the game.
func (m *Model) advance() {
	if m.inputFrame.Has(core.ActionRestart) {
		m.status = ""
		m.recordResult()
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Moved {
		m.status = ""
	}

	if m.gameState.GameOver {
		m.recordResult()
	}

	m.inputFrame.Clear()
}

// recordResult saves the current game once. Games quit before the first
// turn are not recorded.
func (m *Model) recordResult() {
	if m.scoreSaved || m.store == nil {
		return
	}
	state := m.game.State()
	if state.Turns == 0 {
		return
	}

	outcome := storage.OutcomeAbandoned
	switch {
	case state.Won:
		outcome = storage.OutcomeWin
	case state.Lost:
		outcome = storage.OutcomeLose
	}

	// Marked saved even on failure so a terminal game is not retried every tick.
	m.scoreSaved = true
	_, err := m.store.SaveResult(storage.Result{
		GameID:    m.game.ID(),
		SessionID: m.sessionID,
		Score:     state.Score,
		MaxTile:   state.MaxTile,
		Turns:     state.Turns,
		Outcome:   outcome,
	})
	if err != nil {
		m.status = "score not saved: " + err.Error()
		if m.logger != nil {
			m.logger.Error("could not save result", "session", m.sessionID, "score", state.Score, "error", err)
		}
	}
}

// saveScreenshot writes the current board as plain text under ~/.t2048.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir, err := storage.ExpandPath("~/.t2048/screenshots")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	board := RenderPlain(m.screen)
	if m.color {
		board = RenderScreen(m.screen)
	}

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}
	return board + "\n" + footer
}

// Run starts the Bubble Tea program for a local session.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, color bool) error {
	model := NewModel(g, store, cfg).WithColor(color)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
