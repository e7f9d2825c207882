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

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/director"
	"github.com/vovakirdan/tui-dodge/internal/draw"
	"github.com/vovakirdan/tui-dodge/internal/scene"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// statusHeight is the number of rows below the playfield.
const statusHeight = 1

// Options configures a game Model.
type Options struct {
	Config   config.DodgeConfig
	TickRate int
	Seed     int64
	Player   string
	Store    *storage.Store // Optional
	Logger   *log.Logger

	// Listeners receive every scene event, e.g. audio or the spectator feed.
	Listeners []scene.Listener

	// Initial terminal size, used until the first resize message.
	Width, Height int
}

// frame holds the per-render buffers. Shared by pointer so View, which has
// a value receiver, can keep its hotspots for the next mouse event.
type frame struct {
	screen   *core.Screen
	list     *draw.List
	hotspots []Hotspot
}

// Model is the Bubble Tea model hosting one game.
type Model struct {
	director *director.Director
	recorder *storage.Recorder
	logger   *log.Logger
	tickRate int
	player   string

	frame *frame
	keys  KeyMap
	help  help.Model
	holds *HoldTracker
	input core.InputFrame // One-shot actions and pointer state for the next tick

	state    core.GameState
	width    int
	height   int
	quitting bool
}

// NewModel creates the model and starts the title scene.
func NewModel(opts Options) (Model, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}

	recorder := storage.NewRecorder(opts.Store, opts.Player, opts.Logger)
	listeners := append([]scene.Listener{recorder.Listen}, opts.Listeners...)

	d, err := director.New(director.Options{
		Config:    opts.Config,
		TickRate:  opts.TickRate,
		Seed:      opts.Seed,
		Logger:    opts.Logger,
		Listeners: listeners,
	})
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	w := opts.Config.World
	h := help.New()
	h.Width = opts.Width

	return Model{
		director: d,
		recorder: recorder,
		logger:   opts.Logger.WithPrefix("tui"),
		tickRate: opts.TickRate,
		player:   opts.Player,
		frame: &frame{
			screen: core.NewScreen(opts.Width, playfieldHeight(opts.Height)),
			list:   draw.NewList(w.Width, w.Height),
		},
		keys:   DefaultKeyMap(),
		help:   h,
		holds:  NewHoldTracker(opts.Config.Input.HoldWindow()),
		input:  core.NewInputFrame(),
		state:  d.State(),
		width:  opts.Width,
		height: opts.Height,
	}, nil
}

func playfieldHeight(h int) int {
	return max(h-statusHeight, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.frame.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		m.director.Shutdown()
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.holds.Press(a, time.Now())
	case core.ActionConfirm:
		m.input.Set(a)
	}
	return m, nil
}

// handleMouse tracks the pointer in world coordinates. A press is latched
// until the next tick so quick clicks are never lost.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	s := m.frame.screen
	w := m.director.Config().World
	x, y := ToWorld(msg.X, msg.Y, s.Width(), s.Height(), w.Width, w.Height, m.frame.hotspots)

	m.input.Pointer.X, m.input.Pointer.Y = x, y
	m.input.Pointer.Present = msg.Y < s.Height()
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.input.Pointer.Pressed = true
	}
	return m, nil
}

// handleTick advances the game by one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	in := m.input.Clone()
	m.holds.Apply(&in, now)

	prev := m.state
	m.state = m.director.Step(in).State
	m.input.Clear()

	if m.state.Session != prev.Session {
		// Keys pressed on the title screen should not steer the new session.
		m.holds.Reset()
	}

	return m, tickCmd(m.tickRate)
}

// render draws the current scene into the frame buffers.
func (m Model) render() {
	m.director.Draw(m.frame.list)
	m.frame.hotspots = Rasterize(m.frame.list, m.frame.screen)
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".dodge", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("dodge_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.frame.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the playfield and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	if m.help.ShowAll {
		return RenderScreen(m.frame.screen) + "\n" + m.help.View(m.keys)
	}
	return RenderScreen(m.frame.screen) + "\n" + statusStyle.Render(m.statusLine())
}

func (m Model) statusLine() string {
	status := fmt.Sprintf("best %d", m.recorder.Best())
	if m.player != "" {
		status = m.player + " · " + status
	}
	return status + "  " + m.help.ShortHelpView(m.keys.ShortHelp())
}

// State returns the last stepped game state.
func (m Model) State() core.GameState {
	return m.state
}

// Director returns the game's scene controller.
func (m Model) Director() *director.Director {
	return m.director
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a button held
	)

	_, err = p.Run()
	return err
}
