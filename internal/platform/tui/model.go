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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sidestep/internal/config"
	"github.com/vovakirdan/sidestep/internal/core"
	"github.com/vovakirdan/sidestep/internal/games/sidestep"
)

// Rows reserved for the short and the full help bar.
const (
	shortHelpHeight = 1
	fullHelpHeight  = 3
)

// Model is the Bubble Tea model for a Sidestep session.
type Model struct {
	session   *sidestep.Session
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	hold      HoldTracker
	pending   core.Intents // Edge-triggered intents collected since the last tick
	lastPhase sidestep.Phase
	logger    *log.Logger
	clock     func() time.Time
	start     time.Time
	quitting  bool
}

// NewModel creates a new Bubble Tea model running a fresh session.
// A nil logger discards phase transition logs.
func NewModel(game config.SidestepConfig, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	session := sidestep.New(game, cfg.Seed)

	return Model{
		session:   session,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-shortHelpHeight),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		hold:      NewHoldTracker(game.Input.HoldWindow()),
		lastPhase: session.Phase(),
		logger:    logger,
		clock:     time.Now,
		start:     time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session created", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.config.ScreenH-m.helpHeight())
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		// Quit is honored immediately instead of waiting for the next tick.
		view := m.session.Tick(m.elapsed(m.clock()), core.Intents{Quit: true})
		if view.QuitRequested {
			m.logger.Debug("quit requested", "phase", view.Phase, "score", view.Score)
			m.quitting = true
			return m, tea.Quit
		}
	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action, m.clock())
	case core.ActionConfirm:
		m.pending.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The world has a fixed size, so the session keeps running untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-m.helpHeight())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame with the intents gathered so far.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.clock()

	in := m.pending
	m.hold.Apply(&in, now)
	m.pending.Clear()

	view := m.session.Tick(m.elapsed(now), in)
	if view.QuitRequested {
		m.quitting = true
		return m, tea.Quit
	}

	if view.Phase != m.lastPhase {
		m.logger.Info("phase changed",
			"from", m.lastPhase,
			"to", view.Phase,
			"score", view.Score,
			"lives", view.Lives,
		)
		m.lastPhase = view.Phase

		// Movement held into the game over screen does not carry into a restart.
		if view.Phase == sidestep.PhaseGameOver {
			m.hold.Release()
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// helpHeight returns the rows taken by the help bar.
func (m Model) helpHeight() int {
	if m.help.ShowAll {
		return fullHelpHeight
	}
	return shortHelpHeight
}

// elapsed converts a wall-clock instant to session seconds.
func (m Model) elapsed(now time.Time) float64 {
	return now.Sub(m.start).Seconds()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	sidestep.Draw(m.screen, m.session.View())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".sidestep", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("sidestep_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Session returns the game session driven by the model.
func (m Model) Session() *sidestep.Session {
	return m.session
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sidestep.Draw(m.screen, m.session.View())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game config.SidestepConfig, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
