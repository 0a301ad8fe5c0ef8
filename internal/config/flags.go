package config

import "github.com/spf13/pflag"

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Window.Width, "width", c.Window.Width, "window width")
	fs.IntVar(&c.Window.Height, "height", c.Window.Height, "window height")
	fs.IntVar(&c.Window.TPS, "tps", c.Window.TPS, "ticks per second")
	fs.IntVar(&c.Window.HUDWidth, "hud-width", c.Window.HUDWidth, "width of the parameter panel")

	fs.Float64Var(&c.Tree.MaxAngleDeg, "max-angle", c.Tree.MaxAngleDeg, "largest branch angle in degrees")
	fs.Float64Var(&c.Tree.MaxMultiplier, "max-multiplier", c.Tree.MaxMultiplier, "largest child/parent length ratio")
	fs.Float64Var(&c.Tree.StartLengthRatio, "start-ratio", c.Tree.StartLengthRatio, "trunk length as a share of the surface height")
	fs.Float64Var(&c.Tree.CycleStep, "cycle-step", c.Tree.CycleStep, "growth per animation tick")
	fs.IntVar(&c.Tree.MaxFPS, "max-fps", c.Tree.MaxFPS, "animation frame rate ceiling")
	fs.Int64Var(&c.Tree.Seed, "seed", c.Tree.Seed, "seed for the branch factors (0 = time based)")
	fs.BoolVar(&c.Tree.LingerAfterComplete, "linger", c.Tree.LingerAfterComplete, "draw one extra frame after growth completes")

	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "log level (debug, info, warn, error)")
	fs.StringVar(&c.Log.File, "log-file", c.Log.File, "write logs to this file")
}

// Override copies every flag the user set on fs onto c. Flags that fs does
// not know about are ignored.
func (c *Config) Override(fs *pflag.FlagSet) error {
	own := pflag.NewFlagSet("override", pflag.ContinueOnError)
	c.Bind(own)
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil || own.Lookup(f.Name) == nil {
			return
		}
		err = own.Set(f.Name, f.Value.String())
	})
	return err
}

// Resolve builds the effective configuration. The file at path (or the
// defaults) comes first, a preset replaces its tree section and flags the
// user set on fs win over both.
func Resolve(path, preset string, fs *pflag.FlagSet) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}
	if fs != nil {
		if err := cfg.Override(fs); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
