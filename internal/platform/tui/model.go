package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ambient/internal/core"
	"github.com/vovakirdan/tui-ambient/internal/layout"
	"github.com/vovakirdan/tui-ambient/internal/pattern"
)

// Pane is one named pattern shown by the viewer.
type Pane struct {
	Title   string
	Pattern pattern.Pattern
}

// Options configures the viewer model.
type Options struct {
	Width  int
	Height int
	FPS    int
}

// DefaultOptions returns viewer options for a standard terminal.
func DefaultOptions() Options {
	return Options{
		Width:  80,
		Height: 24,
		FPS:    30,
	}
}

// Model is the Bubble Tea model driving the patterns. It owns the animation
// clock and the screen buffer; patterns only ever see deltas and areas, which
// keeps them independent of the terminal and of wall-clock time.
type Model struct {
	clock    *core.Clock
	screen   *core.Screen
	panes    []Pane
	grid     layout.Grid
	fps      int
	paused   bool
	keys     KeyMap
	quitting bool
}

// NewModel creates a viewer for the given panes. A single pane renders
// fullscreen; multiple panes are laid out with the responsive grid.
func NewModel(panes []Pane, grid layout.Grid, opts Options) Model {
	if opts.FPS < 1 {
		opts.FPS = DefaultOptions().FPS
	}

	// The bottom terminal row is reserved for the status bar.
	h := core.Max(opts.Height-1, 0)

	return Model{
		clock:  core.NewClock(),
		screen: core.NewScreen(opts.Width, h),
		panes:  panes,
		grid:   grid,
		fps:    opts.FPS,
		keys:   DefaultKeyMap(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0))
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Reset):
		m.clock.Reset()
	}
	return m, nil
}

// handleTick advances every pattern by the clock delta.
// The clock keeps ticking while paused so resuming doesn't replay the gap as
// one giant delta.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	delta := m.clock.Tick()
	if !m.paused {
		for _, p := range m.panes {
			p.Pattern.Update(delta)
		}
	}
	return m, tickCmd(m.fps)
}

// View composites all panes onto the screen buffer and styles the result.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	area := m.screen.Area()

	if len(m.panes) == 1 {
		m.panes[0].Pattern.Render(area, m.screen)
	} else {
		m.renderGallery(area)
	}

	return RenderScreen(m.screen) + "\n" + StatusBar(m.keys, m.paused)
}

// renderGallery lays the panes out with the responsive grid, one boxed cell
// per pattern with its title on the top border.
func (m Model) renderGallery(area core.Rect) {
	cells := m.grid.Split(area, len(m.panes))
	for i, cell := range cells {
		p := m.panes[i]

		m.screen.DrawBox(cell)
		p.Pattern.Render(cell.Inset(1), m.screen)

		title := " " + p.Title + " "
		if len([]rune(title))+4 <= cell.W {
			m.screen.DrawText(cell.X+2, cell.Y, title)
		}
	}
}
