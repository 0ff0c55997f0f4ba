package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starfield-pong/internal/platform/tui"
	"github.com/vovakirdan/starfield-pong/internal/storage"
)

const historyGameID = "pong"

var (
	flagHistoryLimit int
	flagHistoryPlain bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished rounds and win totals",
	Long: `Display the match history: every finished round with its score,
winner, length and longest rally, plus per-side win totals.

On a terminal the history opens as a scrollable table; use --plain (or
pipe the output) for a text listing.

Examples:
  pong history
  pong history --plain --limit 5
  pong history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of rounds to list in plain mode")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a plain text listing")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the match history")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearMatches(historyGameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Match history cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagHistoryPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, historyGameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printHistory(store)
}

// printHistory writes a plain text listing of recent rounds.
func printHistory(store *storage.Store) {
	matches, err := store.RecentMatches(historyGameID, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History - Starfield Pong")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pong play' and finish a round to start the history!")
		return
	}

	fmt.Printf("  %-16s  %-7s  %-6s  %-8s  %-5s  %s\n", "Ended", "Score", "Winner", "Length", "Rally", "Player")
	fmt.Printf("  %-16s  %-7s  %-6s  %-8s  %-5s  %s\n", "-----", "-----", "------", "------", "-----", "------")

	for _, m := range matches {
		fmt.Printf("  %-16s  %-7s  %-6s  %-8s  %-5d  %s\n",
			m.EndedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d-%d", m.ScoreA, m.ScoreB),
			m.Winner,
			m.Duration.Round(time.Second).String(),
			m.LongestRally,
			m.Source,
		)
	}

	totals, err := store.MatchTotals(historyGameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Rounds: %d  |  Player A: %d  |  Player B: %d  |  Longest rally: %d\n",
			totals.Matches, totals.WinsA, totals.WinsB, totals.LongestRally)
	}
}
