package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-pusher/internal/registry"
	"github.com/vovakirdan/star-pusher/internal/storage"
)

var (
	flagClear    bool
	flagTopLevel int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <pack>",
	Short: "Show best solves for a pack",
	Long: `Display the best step count of every solved level in a pack,
or the ten best solves of one level with --level.

Examples:
  starpusher scores starter
  starpusher scores starter --level 2
  starpusher scores courtyards --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded solves of the pack")
	scoresCmd.Flags().IntVar(&flagTopLevel, "level", 0, "Show the top solves of one level (1-based)")
}

func runScores(_ *cobra.Command, args []string) {
	packID := args[0]

	if !registry.Exists(packID) {
		fmt.Fprintf(os.Stderr, "Error: unknown pack %q\n", packID)
		fmt.Fprintln(os.Stderr, "Run 'starpusher list' to see available packs.")
		os.Exit(1)
	}

	lvls, err := registry.Create(packID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading pack: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	title := registry.Title(packID)

	if flagClear {
		if err := store.ClearPack(packID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared all solves of %s.\n", title)
		return
	}

	if flagTopLevel > 0 {
		if flagTopLevel > len(lvls) {
			fmt.Fprintf(os.Stderr, "Error: level %d out of range 1-%d\n", flagTopLevel, len(lvls))
			return
		}
		printTopSolves(store, packID, title, flagTopLevel-1)
		return
	}

	rows, err := store.BestByLevel(packID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("Best Solves - %s\n", title)
	fmt.Println()

	if len(rows) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'starpusher play %s' to set the first one!\n", packID)
		return
	}

	fmt.Printf("  %-5s  %-24s  %-6s  %-6s  %-10s  %s\n", "Level", "Title", "Best", "Solves", "By", "Date")
	fmt.Printf("  %-5s  %-24s  %-6s  %-6s  %-10s  %s\n", "-----", "-----", "----", "------", "--", "----")

	for _, r := range rows {
		name := ""
		if r.Level < len(lvls) {
			name = lvls[r.Level].Title
		}
		fmt.Printf("  %-5d  %-24.24s  %-6d  %-6d  %-10.10s  %s\n",
			r.Level+1, name, r.BestSteps, r.Solves, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.PackStats(packID); err == nil {
		fmt.Printf("Solved %d of %d levels in %d total best steps.\n", stats.LevelsSolved, len(lvls), stats.TotalBest)
	}
}

func printTopSolves(store *storage.Store, packID, title string, level int) {
	solves, err := store.TopSolves(packID, level, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("Top Solves - %s, level %d\n", title, level+1)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-10s  %s\n", "Rank", "Steps", "By", "Date")
	fmt.Printf("  %-4s  %-6s  %-10s  %s\n", "----", "-----", "--", "----")
	for i, s := range solves {
		fmt.Printf("  %-4d  %-6d  %-10.10s  %s\n", i+1, s.Steps, s.Player, s.CreatedAt.Format("2006-01-02 15:04"))
	}
}
