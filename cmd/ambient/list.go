package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ambient/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available patterns",
	Long:  `Shows a list of all registered animation patterns.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	patterns := registry.List()

	if len(patterns) == 0 {
		fmt.Println("No patterns available.")
		return
	}

	fmt.Println("Available patterns:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range patterns {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, p := range patterns {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'ambient play <id>' to render a pattern.")
}
