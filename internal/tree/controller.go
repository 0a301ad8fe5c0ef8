package tree

import (
	"fractal-tree/internal/core"

	"go.uber.org/zap"
)

// Controller maps host input onto the parameter set. Every handler runs to
// completion, mutating parameters before it redraws.
type Controller struct {
	params  *core.Params
	surface core.Surface
	driver  *Driver
	rng     *core.RNG
	redraw  func()
	ratio   float64
	logger  *zap.Logger
}

// Resize applies new surface dimensions. The start length bound follows the
// height and the current length keeps its share of it.
func (c *Controller) Resize(w, h int) {
	c.surface.SetSize(w, h)
	if w <= 0 || h <= 0 {
		c.logger.Warn("surface collapsed", zap.Int("width", w), zap.Int("height", h))
		return
	}
	old := c.params.MaxStartLength
	c.params.MaxStartLength = float64(h) * c.ratio
	if old > 0 {
		c.params.Length *= c.params.MaxStartLength / old
	} else {
		c.params.Length = c.params.Cycle * c.params.MaxStartLength
	}
	c.logger.Debug("resize", zap.Int("width", w), zap.Int("height", h),
		zap.Float64("max_start_length", c.params.MaxStartLength))
	c.redraw()
}

// SetAngle applies the angle slider, v in [0, 1].
func (c *Controller) SetAngle(v float64) {
	c.params.Angle = v * c.params.MaxAngle
	c.redraw()
}

// SetMultiplier applies the multiplier slider, v in [0, 1].
func (c *Controller) SetMultiplier(v float64) {
	c.params.Multiplier = v * c.params.MaxMultiplier
	c.redraw()
}

// PointerMove maps a surface-relative pointer position onto angle (x) and
// multiplier (y). Moves over an empty surface are ignored.
func (c *Controller) PointerMove(x, y float64) {
	size := c.surface.Size()
	if size.Empty() {
		return
	}
	c.params.Angle = x / float64(size.W) * c.params.MaxAngle
	c.params.Multiplier = y / float64(size.H) * c.params.MaxMultiplier
	c.redraw()
}

// Regenerate re-rolls both random factors and restarts the growth animation.
func (c *Controller) Regenerate() {
	c.params.Random = c.rng.Factors()
	c.logger.Debug("regenerate",
		zap.Float64("factor_a", c.params.Random.A),
		zap.Float64("factor_b", c.params.Random.B),
		zap.Stringer("prior_state", c.driver.State()))
	c.driver.Start()
}
