package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-pusher/internal/games/pusher/core"
	"github.com/vovakirdan/star-pusher/internal/games/pusher/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a level file",
	Long: `Parse a level file and print a summary of every level, or the
first format error with its level and line number.

Examples:
  starpusher check ./my_levels.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	lvls, err := levels.LoadFile(args[0])
	if err != nil {
		var fe *levels.FormatError
		if errors.As(err, &fe) {
			fmt.Fprintf(os.Stderr, "Invalid: level %d (line %d): %s\n", fe.Level, fe.Line, fe.Kind)
			if fe.Detail != "" {
				fmt.Fprintf(os.Stderr, "  %s\n", fe.Detail)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("%s: %d levels\n", args[0], len(lvls))
	fmt.Println()
	fmt.Printf("  %-5s  %-5s  %-7s  %-5s  %-5s  %s\n", "Level", "Line", "Size", "Goals", "Stars", "Title")
	fmt.Printf("  %-5s  %-5s  %-7s  %-5s  %-5s  %s\n", "-----", "----", "----", "-----", "-----", "-----")

	for _, l := range lvls {
		note := l.Title
		if core.NewPuzzle(l, l.Grid).Solved() {
			note += " (already solved)"
		}
		fmt.Printf("  %-5d  %-5d  %-7s  %-5d  %-5d  %s\n",
			l.Index+1, l.Line, fmt.Sprintf("%dx%d", l.Width, l.Height), len(l.Goals), len(l.Start.Boxes), note)
	}
}
