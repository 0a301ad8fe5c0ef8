//go:build !ebiten

package main

import (
	"fmt"

	"fractal-tree/internal/app"

	"github.com/spf13/cobra"
)

func runWindow(cmd *cobra.Command, args []string) error {
	return fmt.Errorf("%w: re-run with `go run -tags ebiten ./cmd/tree` or use `tree tui`", app.ErrNoGUI)
}
