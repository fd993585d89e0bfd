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
	"github.com/vovakirdan/tui-ambient/internal/storage"
)

var (
	flagSpeed      float64
	flagChars      string
	flagDropChance float64
	flagPreset     string
)

var playCmd = &cobra.Command{
	Use:   "play <pattern>",
	Short: "Render a pattern fullscreen",
	Long: `Render the specified pattern fullscreen.

Controls:
  P/Space    - Pause
  R          - Reset the animation clock
  Q/Ctrl+C   - Quit

Examples:
  ambient play wave
  ambient play wave --speed 0.5 --chars ".:-=+*#"
  ambient play rain --drop-chance 0.9 --seed 42
  ambient play rain --preset storm`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().Float64Var(&flagSpeed, "speed", 0, "Animation speed (0 = pattern default)")
	playCmd.Flags().StringVar(&flagChars, "chars", "", "Glyph set override")
	playCmd.Flags().Float64Var(&flagDropChance, "drop-chance", -1, "Rain spawn probability in [0,1]")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Load tunables from a saved preset")
}

func runPlay(cmd *cobra.Command, args []string) {
	patternID := args[0]

	if !registry.Exists(patternID) {
		fmt.Fprintf(os.Stderr, "Error: unknown pattern %q\n", patternID)
		fmt.Fprintln(os.Stderr, "Run 'ambient list' to see available patterns.")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Seed = flagSeed

	if flagPreset != "" {
		if err := applyPreset(&cfg, patternID, flagPreset); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	applyPlayFlags(cmd, &cfg)
	cfg.Normalize()

	pat, err := registry.Create(patternID, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating pattern: %v\n", err)
		os.Exit(1)
	}

	opts := tui.DefaultOptions()
	opts.FPS = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		opts.Width = w
		opts.Height = h
	}

	model := tui.NewModel(
		[]tui.Pane{{Title: titleFor(patternID), Pattern: pat}},
		layout.NewGrid(cfg.Grid.MinColumnWidth, cfg.Grid.MaxColumns),
		opts,
	)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running pattern: %v\n", err)
		os.Exit(1)
	}
}

// applyPreset loads a named preset from the store and copies its tunables
// into the config section for the pattern being played.
func applyPreset(cfg *config.AmbientConfig, patternID, name string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	preset, err := store.GetPreset(name)
	if err != nil {
		return err
	}
	if preset.PatternID != patternID {
		return fmt.Errorf("preset %q is for pattern %q, not %q", name, preset.PatternID, patternID)
	}

	switch patternID {
	case "wave":
		cfg.Wave.Speed = preset.Speed
		cfg.Wave.Chars = preset.Chars
	case "rain":
		cfg.Rain.Speed = preset.Speed
		cfg.Rain.Chars = preset.Chars
		cfg.Rain.DropChance = preset.DropChance
	}
	return nil
}

// applyPlayFlags overlays explicitly-set CLI flags onto the config. The
// overrides land in every section; the factory only reads the one that
// matters for the pattern being played.
func applyPlayFlags(cmd *cobra.Command, cfg *config.AmbientConfig) {
	if cmd.Flags().Changed("speed") {
		cfg.Wave.Speed = flagSpeed
		cfg.Rain.Speed = flagSpeed
	}
	if cmd.Flags().Changed("chars") {
		cfg.Wave.Chars = flagChars
		cfg.Rain.Chars = flagChars
	}
	if cmd.Flags().Changed("drop-chance") {
		cfg.Rain.DropChance = flagDropChance
	}
}

// titleFor looks up the display title of a registered pattern.
func titleFor(patternID string) string {
	for _, info := range registry.List() {
		if info.ID == patternID {
			return info.Title
		}
	}
	return patternID
}
