// ambient is a terminal toy that renders procedural glyph animations.
//
// Usage:
//
//	ambient list              - List available patterns
//	ambient play <pattern>    - Render one pattern fullscreen
//	ambient gallery           - Show all patterns in a responsive grid
//	ambient presets           - Manage saved pattern presets
//	ambient serve             - Start SSH server for remote viewing
//
// Global flags:
//
//	--fps <rate>      - Frame rate (default: 30)
//	--seed <value>    - RNG seed for reproducible animations
//	--config <path>   - Path to a pattern config YAML
//	--db <path>       - Preset database path (default: ~/.ambient/presets.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ambient",
	Short: "Ambient - procedural glyph animations for your terminal",
	Long: `Ambient renders procedural, time-driven glyph animations directly
in your terminal.

Available commands:
  list     - Show all available patterns
  play     - Render a single pattern fullscreen
  gallery  - Show every pattern in a responsive grid
  presets  - Manage saved pattern presets
  serve    - Start SSH server for remote viewing

Examples:
  ambient list
  ambient play rain
  ambient play rain --drop-chance 0.8 --seed 42
  ambient gallery
  ambient presets save storm --pattern rain --speed 2.5
  ambient serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a pattern config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ambient/presets.db", "Path to preset database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(serveCmd)
}
