package tui

import (
	"math"
	"strings"
	"testing"
	"time"

	"fractal-tree/internal/tree"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := tree.DefaultConfig()
	cfg.Seed = 11
	m, err := New(cfg, nil, 40, 13)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestModelRendersTreeAndStatus(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 13 {
		t.Fatalf("view has %d lines, want 12 canvas rows plus status", len(lines))
	}
	if !strings.Contains(lines[12], "regenerate") {
		t.Fatalf("status line missing help: %q", lines[12])
	}
	if m.canvas.String() == strings.Repeat(strings.Repeat("⠀", 40)+"\n", 12) {
		t.Fatal("canvas is blank after the initial draw")
	}
}

func TestModelResizesTreeInSubPixels(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 21})
	if cols, rows := m.canvas.Cells(); cols != 60 || rows != 20 {
		t.Fatalf("cells = %dx%d, want 60x20", cols, rows)
	}
	if got := m.Tree().Params().MaxStartLength; got != 80*0.25 {
		t.Fatalf("max start length = %v, want 20", got)
	}
}

func TestModelKeysDriveSliders(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.MouseMsg{X: 20, Y: 6, Action: tea.MouseActionMotion})
	p := m.Tree().Params()
	if math.Abs(p.Angle/p.MaxAngle-0.5) > 1e-9 || math.Abs(p.Multiplier/p.MaxMultiplier-0.5) > 1e-9 {
		t.Fatalf("pointer mapping: angle ratio %v multiplier ratio %v", p.Angle/p.MaxAngle, p.Multiplier/p.MaxMultiplier)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	p = m.Tree().Params()
	if math.Abs(p.Angle/p.MaxAngle-0.55) > 1e-9 || math.Abs(p.Multiplier/p.MaxMultiplier-0.55) > 1e-9 {
		t.Fatalf("after keys: angle ratio %v multiplier ratio %v", p.Angle/p.MaxAngle, p.Multiplier/p.MaxMultiplier)
	}
}

func TestModelRegenerateAndQuit(t *testing.T) {
	m := newTestModel(t)
	now := time.Now()
	for i := 1; i <= 5; i++ {
		m.Update(tickMsg(now.Add(time.Duration(i) * 20 * time.Millisecond)))
	}
	if m.Tree().Params().Cycle <= 0.5 {
		t.Fatal("ticks did not advance the animation")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if c := m.Tree().Params().Cycle; c != 0.5 {
		t.Fatalf("cycle after regenerate = %v, want 0.5", c)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit key did not quit")
	}
	if m.Tree().State() != tree.Idle {
		t.Fatalf("state after quit = %v, want idle", m.Tree().State())
	}
}

func TestModelKeysWithZeroAngleBound(t *testing.T) {
	cfg := tree.DefaultConfig()
	cfg.Seed = 11
	cfg.MaxAngleDeg = 0
	m, err := New(cfg, nil, 40, 13)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if a := m.Tree().Params().Angle; math.IsNaN(a) || a != 0 {
		t.Fatalf("angle = %v, want 0", a)
	}
}
