package main

import (
	"fmt"
	"os"

	"fractal-tree/internal/config"

	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "tree",
		Short:        "animated recursive fractal tree",
		SilenceUsage: true,
		RunE:         runWindow,
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&preset, "preset", "", "tree preset, see the presets command")
	config.DefaultConfig().Bind(flags)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "grow the tree in the terminal",
		RunE:  runTUI,
	}

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "grow the tree headlessly and report every redraw",
		RunE:  runSimulate,
	}
	simulateCmd.Flags().IntVar(&simHz, "hz", 60, "virtual display refresh rate")
	simulateCmd.Flags().IntVar(&simFrames, "frames", 10000, "maximum frames to run")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list tree presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Printf("%-8s angle %3.0f°  multiplier %.2f\n", name, p.MaxAngleDeg, p.MaxMultiplier)
			}
		},
	}

	rootCmd.AddCommand(tuiCmd, simulateCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Resolve(configFile, preset, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
