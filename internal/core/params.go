package core

import (
	"errors"
	"fmt"
)

// ErrUnsafeMultiplier is returned when a length multiplier would stop the
// recursion from shrinking towards its base case.
var ErrUnsafeMultiplier = errors.New("multiplier must be in (0, 1)")

// Params is the live parameter set shared by the engine, the animation
// driver and the input controller. Angles are in radians, lengths in pixels.
type Params struct {
	Angle    float64
	MaxAngle float64

	Multiplier    float64
	MaxMultiplier float64

	Length         float64
	MaxStartLength float64

	Cycle  float64
	Random RandomFactors
}

// Validate checks the upper bounds the rest of the parameters derive from.
func (p *Params) Validate() error {
	if p.MaxMultiplier <= 0 || p.MaxMultiplier >= 1 {
		return fmt.Errorf("max multiplier %.3f: %w", p.MaxMultiplier, ErrUnsafeMultiplier)
	}
	if p.MaxAngle < 0 {
		return fmt.Errorf("max angle %.3f must not be negative", p.MaxAngle)
	}
	if p.MaxStartLength < 0 {
		return fmt.Errorf("max start length %.3f must not be negative", p.MaxStartLength)
	}
	return nil
}

// Derive sets angle, multiplier and length from a growth cycle value.
func (p *Params) Derive(cycle float64) {
	p.Angle = cycle * p.MaxAngle
	p.Multiplier = cycle * p.MaxMultiplier
	p.Length = cycle * p.MaxStartLength
}

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeString denotes free-form text values.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value exposed for display.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of values exposed by a tree.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter stored under key, if any group has it.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, group := range s.Groups {
		for _, param := range group.Params {
			if param.Key == key {
				return param, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD as a slider. Bounds are optional.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
