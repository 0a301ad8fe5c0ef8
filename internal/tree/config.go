package tree

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid tree config")

// MaxConfigMultiplier caps max_multiplier. Above it the recursion grows too
// deep for a redraw per frame on a large window.
const MaxConfigMultiplier = 0.85

// Config controls the tree's parameter bounds and animation pacing.
type Config struct {
	MaxAngleDeg         float64 `yaml:"max_angle_deg"`
	MaxMultiplier       float64 `yaml:"max_multiplier"`
	StartLengthRatio    float64 `yaml:"start_length_ratio"`
	CycleStart          float64 `yaml:"cycle_start"`
	CycleStep           float64 `yaml:"cycle_step"`
	MaxFPS              int     `yaml:"max_fps"`
	Seed                int64   `yaml:"seed"`
	LingerAfterComplete bool    `yaml:"linger_after_complete"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		MaxAngleDeg:      45,
		MaxMultiplier:    0.67,
		StartLengthRatio: 0.25,
		CycleStart:       0.5,
		CycleStep:        0.01,
		MaxFPS:           60,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.MaxAngleDeg < 0 || c.MaxAngleDeg > 180:
		return fmt.Errorf("%w: max_angle_deg %.2f outside [0, 180]", ErrInvalidConfig, c.MaxAngleDeg)
	case c.MaxMultiplier <= 0 || c.MaxMultiplier > MaxConfigMultiplier:
		return fmt.Errorf("%w: max_multiplier %.3f outside (0, %.2f]", ErrInvalidConfig, c.MaxMultiplier, MaxConfigMultiplier)
	case c.StartLengthRatio <= 0 || c.StartLengthRatio > 1:
		return fmt.Errorf("%w: start_length_ratio %.3f outside (0, 1]", ErrInvalidConfig, c.StartLengthRatio)
	case c.CycleStart < 0 || c.CycleStart > 1:
		return fmt.Errorf("%w: cycle_start %.3f outside [0, 1]", ErrInvalidConfig, c.CycleStart)
	case c.CycleStep <= 0 || c.CycleStep > 1:
		return fmt.Errorf("%w: cycle_step %.3f outside (0, 1]", ErrInvalidConfig, c.CycleStep)
	case c.MaxFPS <= 0:
		return fmt.Errorf("%w: max_fps %d must be positive", ErrInvalidConfig, c.MaxFPS)
	}
	return nil
}

// MaxAngle returns the angle bound in radians.
func (c Config) MaxAngle() float64 { return c.MaxAngleDeg * math.Pi / 180 }

// Interval returns the minimum spacing between animation ticks.
func (c Config) Interval() time.Duration {
	if c.MaxFPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.MaxFPS)
}
