package main

import (
	"fractal-tree/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// Logging to the terminal would tear the display.
	logger := zap.NewNop()
	if cfg.Log.File != "" {
		if logger, err = newLogger(cfg.Log, false); err != nil {
			return err
		}
	}
	defer logger.Sync()
	return tui.Run(cfg.Tree, logger)
}
