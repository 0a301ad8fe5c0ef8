// Package tui hosts the tree in a terminal, drawing it with Braille cells.
package tui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"fractal-tree/internal/core"
	"fractal-tree/internal/render"
	"fractal-tree/internal/tree"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	statusRows = 1
	sliderStep = 0.05
	// refresh is how often the terminal repaints. The tree's own throttle
	// decides which repaints advance the animation.
	refresh = time.Second / 60
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(refresh, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea model wrapping one tree.
type Model struct {
	canvas *render.Canvas
	frames *core.FrameQueue
	tree   *tree.Tree
	stats  core.Stats
	logger *zap.Logger
}

// New builds a model on a cols x rows terminal.
func New(cfg tree.Config, logger *zap.Logger, cols, rows int) (*Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{
		canvas: render.NewCanvas(cols, max(rows-statusRows, 0)),
		frames: core.NewFrameQueue(),
		logger: logger,
	}
	t, err := tree.New(m.canvas, m.frames,
		tree.WithConfig(cfg),
		tree.WithLogger(logger),
		tree.WithDebug(core.DebugFunc(func(s core.Stats) { m.stats = s })),
	)
	if err != nil {
		return nil, err
	}
	m.tree = t
	return m, nil
}

// Tree returns the hosted tree.
func (m *Model) Tree() *tree.Tree { return m.tree }

// Init starts the repaint ticker.
func (m *Model) Init() tea.Cmd { return tick() }

// Update flushes animation frames on ticks and routes resize, mouse and key
// input to the tree.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.frames.Flush(time.Time(msg))
		return m, tick()
	case tea.WindowSizeMsg:
		rows := max(msg.Height-statusRows, 0)
		m.tree.Resize(msg.Width*2, rows*4)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			cols, rows := m.canvas.Cells()
			if msg.X < cols && msg.Y < rows {
				m.tree.PointerMove(float64(msg.X*2), float64(msg.Y*4))
			}
		}
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.tree.Params()
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.tree.Stop()
		return m, tea.Quit
	case "g", "r":
		m.tree.Regenerate()
	case "left", "h":
		m.tree.SetAngle(clamp01(ratio(p.Angle, p.MaxAngle) - sliderStep))
	case "right", "l":
		m.tree.SetAngle(clamp01(ratio(p.Angle, p.MaxAngle) + sliderStep))
	case "down", "j":
		m.tree.SetMultiplier(clamp01(ratio(p.Multiplier, p.MaxMultiplier) - sliderStep))
	case "up", "k":
		m.tree.SetMultiplier(clamp01(ratio(p.Multiplier, p.MaxMultiplier) + sliderStep))
	}
	return m, nil
}

// View renders the canvas in cell colours followed by the status line.
func (m *Model) View() string {
	var b strings.Builder
	cols, rows := m.canvas.Cells()
	for y := 0; y < rows; y++ {
		row := m.canvas.Row(y)
		start := 0
		for x := 1; x <= cols; x++ {
			if x < cols && m.canvas.CellColor(x, y) == m.canvas.CellColor(start, y) {
				continue
			}
			b.WriteString(paint(string(row[start:x]), m.canvas.CellColor(start, y)))
			start = x
		}
		b.WriteByte('\n')
	}
	b.WriteString(m.status())
	return b.String()
}

func (m *Model) status() string {
	s := m.stats
	state := "growing"
	if !s.Running {
		state = m.tree.State().String()
	}
	parts := []string{
		labelStyle.Render("cycle ") + valueStyle.Render(fmt.Sprintf("%.2f", s.Cycle)),
		labelStyle.Render("angle ") + valueStyle.Render(fmt.Sprintf("%.2f", s.Angle)),
		labelStyle.Render("mult ") + valueStyle.Render(fmt.Sprintf("%.2f", s.Multiplier)),
		labelStyle.Render("count ") + valueStyle.Render(fmt.Sprintf("%d", s.Count)),
		labelStyle.Render(state),
		helpStyle.Render("g regenerate  ←→ angle  ↑↓ multiplier  q quit"),
	}
	return strings.Join(parts, "  ")
}

func paint(s string, c color.RGBA) string {
	if c.A == 0 {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))).Render(s)
}

// ratio returns v as a share of bound, or 0 when bound is 0.
func ratio(v, bound float64) float64 {
	if bound == 0 {
		return 0
	}
	return v / bound
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// Run starts the terminal host and blocks until the user quits.
func Run(cfg tree.Config, logger *zap.Logger) error {
	m, err := New(cfg, logger, 80, 24)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
