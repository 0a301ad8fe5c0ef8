//go:build ebiten

package app

import (
	"image/color"
	"time"

	"fractal-tree/internal/config"
	"fractal-tree/internal/core"
	"fractal-tree/internal/render"
	"fractal-tree/internal/tree"
	"fractal-tree/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

// Game adapts the tree to the ebiten.Game interface.
type Game struct {
	surface *render.ImageSurface
	frames  *core.FrameQueue
	tree    *tree.Tree
	hud     *ui.HUD
	overlay *ui.Overlay
	logger  *zap.Logger

	background color.Color
	hudWidth   int
	cursorX    int
	cursorY    int
}

// New constructs a Game sized for the configured window.
func New(cfg *config.Config, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := cfg.Window
	g := &Game{
		surface:    render.NewImageSurface(w.Width-w.HUDWidth, w.Height),
		frames:     core.NewFrameQueue(),
		overlay:    ui.NewOverlay(),
		logger:     logger,
		background: colornames.Whitesmoke,
		hudWidth:   w.HUDWidth,
		cursorX:    -1,
		cursorY:    -1,
	}
	t, err := tree.New(g.surface, g.frames,
		tree.WithConfig(cfg.Tree),
		tree.WithLogger(logger),
		tree.WithDebug(g.overlay),
	)
	if err != nil {
		return nil, err
	}
	g.tree = t
	g.hud = ui.NewHUD(t, w.HUDWidth)
	return g, nil
}

// Update handles input and runs pending animation frames.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.tree.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.tree.Regenerate()
		g.hud.Flash()
	}
	g.overlay.Update()

	size := g.surface.Size()
	g.hud.Update(size.W)

	x, y := ebiten.CursorPosition()
	if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		if x >= 0 && y >= 0 && x < size.W && y < size.H {
			g.tree.PointerMove(float64(x), float64(y))
		}
	}

	g.frames.Flush(time.Now())
	return nil
}

// Draw renders the tree, the HUD panel and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	if img := g.surface.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	size := g.surface.Size()
	g.hud.Draw(screen, size.W, screen.Bounds().Dy())
	g.overlay.Draw(screen)
}

// Layout resizes the tree to the window minus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth-g.hudWidth, 0)
	if s := g.surface.Size(); s.W != w || s.H != outsideHeight {
		g.tree.Resize(w, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
