package config

import (
	"sort"

	"fractal-tree/internal/tree"
)

// Presets are named tree shapes selectable with --preset.
var Presets = map[string]tree.Config{
	"classic": tree.DefaultConfig(),
	"weeping": withShape(80, 0.72),
	"sparse":  withShape(30, 0.6),
	"dense":   withShape(60, 0.78),
}

func withShape(angleDeg, multiplier float64) tree.Config {
	c := tree.DefaultConfig()
	c.MaxAngleDeg = angleDeg
	c.MaxMultiplier = multiplier
	return c
}

// GetPreset returns the named preset.
func GetPreset(name string) (tree.Config, bool) {
	c, ok := Presets[name]
	return c, ok
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
