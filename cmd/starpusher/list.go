package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-pusher/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all level packs",
	Long:  `Shows every level pack, including a file added with --levels.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No level packs available.")
		return
	}

	fmt.Println("Level packs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Levels", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "-----")

	for _, p := range packs {
		count := "?"
		if lvls, err := registry.Create(p.ID); err == nil {
			count = fmt.Sprintf("%d", len(lvls))
		}
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, p.ID, count, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'starpusher play <id>' to play a pack.")
}
