package main

import (
	"fmt"

	"fractal-tree/internal/simulate"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	simHz     int
	simFrames int

	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log, true)
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts := simulate.Options{
		Width:     cfg.Window.Width - cfg.Window.HUDWidth,
		Height:    cfg.Window.Height,
		RefreshHz: simHz,
		MaxFrames: simFrames,
		Tree:      cfg.Tree,
	}
	rep, err := simulate.Run(opts, logger)
	if err != nil {
		return err
	}

	row := func(label string, value any) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(fmt.Sprint(value)))
	}
	last := rep.Samples[len(rep.Samples)-1]
	fmt.Println(lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("simulation"),
		row("surface", fmt.Sprintf("%dx%d", opts.Width, opts.Height)),
		row("refresh", fmt.Sprintf("%d Hz", opts.RefreshHz)),
		row("frames", rep.Frames),
		row("ticks", rep.Ticks),
		row("completed", rep.Completed),
		row("elapsed", rep.Elapsed),
		row("final calls", last.Calls),
		row("final leaves", last.Leaves),
	))
	if len(rep.Samples) > 1 {
		graph := asciigraph.Plot(rep.Segments(),
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("segments per redraw"))
		fmt.Println(graphStyle.Render(graph))
	}
	return nil
}
