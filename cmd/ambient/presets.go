package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ambient/internal/registry"
	"github.com/vovakirdan/tui-ambient/internal/storage"
)

var (
	flagPresetPattern    string
	flagPresetSpeed      float64
	flagPresetChars      string
	flagPresetDropChance float64
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage saved pattern presets",
	Long: `Presets are named sets of pattern tunables stored in a local
SQLite database. Recall one with 'ambient play <pattern> --preset <name>'.

Examples:
  ambient presets list
  ambient presets save storm --pattern rain --speed 2.5 --drop-chance 0.9
  ambient presets save calm --pattern wave --speed 0.5
  ambient presets delete storm`,
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	Run:   runPresetsList,
}

var presetsSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save or replace a preset",
	Args:  cobra.ExactArgs(1),
	Run:   runPresetsSave,
}

var presetsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a preset",
	Args:  cobra.ExactArgs(1),
	Run:   runPresetsDelete,
}

func init() {
	presetsSaveCmd.Flags().StringVar(&flagPresetPattern, "pattern", "", "Pattern the preset applies to (required)")
	presetsSaveCmd.Flags().Float64Var(&flagPresetSpeed, "speed", 0, "Animation speed (0 = pattern default)")
	presetsSaveCmd.Flags().StringVar(&flagPresetChars, "chars", "", "Glyph set")
	presetsSaveCmd.Flags().Float64Var(&flagPresetDropChance, "drop-chance", 0, "Rain spawn probability in [0,1]")
	//nolint:errcheck // Flag exists, just declared above
	presetsSaveCmd.MarkFlagRequired("pattern")

	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsSaveCmd)
	presetsCmd.AddCommand(presetsDeleteCmd)
}

func runPresetsList(cmd *cobra.Command, args []string) {
	store := openStoreOrExit()
	defer store.Close()

	presets, err := store.ListPresets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(presets) == 0 {
		fmt.Println("No presets saved.")
		return
	}

	maxNameLen := 4 // "Name" header
	for _, p := range presets {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %-8s  %-6s  %-11s  %s\n", maxNameLen, "Name", "Pattern", "Speed", "Drop chance", "Chars")
	for _, p := range presets {
		fmt.Printf("  %-*s  %-8s  %-6.2f  %-11.2f  %s\n",
			maxNameLen, p.Name, p.PatternID, p.Speed, p.DropChance, p.Chars)
	}
}

func runPresetsSave(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagPresetPattern) {
		fmt.Fprintf(os.Stderr, "Error: unknown pattern %q\n", flagPresetPattern)
		os.Exit(1)
	}

	store := openStoreOrExit()
	defer store.Close()

	_, err := store.SavePreset(storage.Preset{
		Name:       args[0],
		PatternID:  flagPresetPattern,
		Speed:      flagPresetSpeed,
		Chars:      flagPresetChars,
		DropChance: flagPresetDropChance,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved preset %q for pattern %q.\n", args[0], flagPresetPattern)
}

func runPresetsDelete(cmd *cobra.Command, args []string) {
	store := openStoreOrExit()
	defer store.Close()

	if err := store.DeletePreset(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Deleted preset %q.\n", args[0])
}

func openStoreOrExit() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening preset database: %v\n", err)
		os.Exit(1)
	}
	return store
}
