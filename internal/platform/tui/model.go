package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ace2932/working-snake-ee354/internal/config"
	"github.com/Ace2932/working-snake-ee354/internal/core"
	"github.com/Ace2932/working-snake-ee354/internal/snake"
	"github.com/Ace2932/working-snake-ee354/internal/storage"
)

// stepEveryFrames divides the 60 Hz frame rate down to the fixed game
// step rate of 5 cells per second. The step period is part of the game
// design and is not configurable.
const stepEveryFrames = 12

// Model is the Bubble Tea model for a single game session.
type Model struct {
	engine *snake.Engine
	screen *core.Screen
	store  *storage.Store
	conf   config.Config
	cfg    core.RuntimeConfig
	keys   GameKeyMap
	help   help.Model

	frame       int
	quitting    bool
	resultSaved bool // result persisted for the current game over
}

// NewModel creates a session model with a freshly powered-up engine.
func NewModel(conf config.Config, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	engine := snake.New(snake.Params{
		Deadzone: conf.Input.Deadzone,
		Seed:     entropyByte(cfg.Seed),
	})

	return Model{
		engine: engine,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		conf:   conf,
		cfg:    cfg,
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
	}
}

// entropyByte folds a 64-bit seed into the 8-bit entropy sample the
// fruit PRNG consumes. A zero sample is coerced by the engine.
func entropyByte(seed int64) uint8 {
	u := uint64(seed)
	var b uint8
	for i := 0; i < 8; i++ {
		b ^= uint8(u >> (8 * i))
	}
	return b
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey maps key presses to tilt samples and control events.
// Direction keys inject a synthetic tilt above the deadzone on the
// corresponding axis; the arbiter handles reversal lockout itself.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tilt := m.conf.Input.KeyTilt

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.engine.Sample(snake.TiltSample{Vertical: -tilt})
	case key.Matches(msg, m.keys.Down):
		m.engine.Sample(snake.TiltSample{Vertical: tilt})
	case key.Matches(msg, m.keys.Left):
		m.engine.Sample(snake.TiltSample{Horizontal: -tilt})
	case key.Matches(msg, m.keys.Right):
		m.engine.Sample(snake.TiltSample{Horizontal: tilt})

	case key.Matches(msg, m.keys.Restart):
		if m.engine.Snapshot().GameOver {
			m.engine.Restart(entropyByte(time.Now().UnixNano()))
			m.resultSaved = false
		}
	}

	return m, nil
}

// handleFrame advances the game on its fixed step cadence and persists
// the result once per game over.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	m.frame++
	if m.frame%stepEveryFrames == 0 {
		m.engine.Advance()

		snap := m.engine.Snapshot()
		if snap.GameOver && !m.resultSaved {
			if m.store != nil && snap.Score.Int() > 0 {
				//nolint:errcheck // Best-effort save, game continues regardless
				m.store.SaveResult(snap.Score.Int(), len(snap.Body))
			}
			m.resultSaved = true
		}
	}

	return m, frameCmd(m.cfg.TickRate)
}

// View renders the committed board state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.engine.Snapshot(), m.conf.Display.ShowGridLines)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(conf config.Config, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(conf, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
