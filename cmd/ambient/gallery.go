package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ambient/internal/config"
	"github.com/vovakirdan/tui-ambient/internal/layout"
	"github.com/vovakirdan/tui-ambient/internal/platform/tui"
	"github.com/vovakirdan/tui-ambient/internal/registry"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Show every pattern in a responsive grid",
	Long: `Render all registered patterns side by side. The grid adapts its
column count to the terminal width.

Controls:
  P/Space    - Pause
  R          - Reset the animation clock
  Q/Ctrl+C   - Quit`,
	Run: runGallery,
}

func runGallery(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Seed = flagSeed

	var panes []tui.Pane
	for _, info := range registry.List() {
		pat, createErr := registry.Create(info.ID, cfg)
		if createErr != nil {
			fmt.Fprintf(os.Stderr, "Error creating pattern %q: %v\n", info.ID, createErr)
			os.Exit(1)
		}
		panes = append(panes, tui.Pane{Title: info.Title, Pattern: pat})
	}

	if len(panes) == 0 {
		fmt.Println("No patterns available.")
		return
	}

	opts := tui.DefaultOptions()
	opts.FPS = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		opts.Width = w
		opts.Height = h
	}

	model := tui.NewModel(
		panes,
		layout.NewGrid(cfg.Grid.MinColumnWidth, cfg.Grid.MaxColumns),
		opts,
	)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running gallery: %v\n", err)
		os.Exit(1)
	}
}
