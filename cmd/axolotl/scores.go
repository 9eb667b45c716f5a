package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/axolotl-dash/internal/highscore"
	"github.com/vovakirdan/axolotl-dash/internal/platform/tui"
	"github.com/vovakirdan/axolotl-dash/internal/storage"
)

var (
	flagPlain bool
	flagWatch bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top 10 high scores",
	Long: `Display the top 10 high scores.

On a terminal the board is an interactive table; otherwise (or with
--plain) it is printed as text.

Examples:
  axolotl scores
  axolotl scores --plain
  axolotl scores --watch`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the board as text")
	scoresCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the table when the file store changes")
}

// updateTimer is implemented by stores that track their last write.
type updateTimer interface {
	UpdatedAt() (time.Time, error)
}

func runScores(_ *cobra.Command, _ []string) {
	a := setup()
	defer a.Close()

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		printScores(os.Stdout, a.load(), lastUpdate(a.store), nil)
		return
	}

	var changes <-chan struct{}
	if flagWatch {
		fs, ok := a.store.(*storage.FileStore)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: --watch needs the file backend, not %q\n", a.cfg.Store.Backend)
			os.Exit(1)
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var err error
		changes, err = fs.Watch(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error watching %s: %v\n", fs.Path(), err)
			os.Exit(1)
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(a.ledger, width, height, tui.Highlight{}, changes); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		os.Exit(1)
	}
}

// lastUpdate returns the store's last write time, or the zero time when
// the store does not track one.
func lastUpdate(store storage.Store) time.Time {
	ut, ok := store.(updateTimer)
	if !ok {
		return time.Time{}
	}
	updated, err := ut.UpdatedAt()
	if err != nil {
		return time.Time{}
	}
	return updated
}

// printScores writes the board as a text table. Rows for which mark
// returns true are flagged; mark may be nil.
func printScores(w io.Writer, ranking highscore.Ranking, updated time.Time, mark func(position, score int) bool) {
	fmt.Fprintln(w, "High Scores - Axolotl Dash")
	fmt.Fprintln(w)

	if len(ranking) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play a run to set the first high score!")
		return
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %s\n", "Rank", "Score")
	fmt.Fprintf(w, "  %-4s  %s\n", "----", "-----")

	for i, score := range ranking {
		if mark != nil && mark(i+1, score) {
			fmt.Fprintf(w, "  %-4d  %-10d  <- this run\n", i+1, score)
			continue
		}
		fmt.Fprintf(w, "  %-4d  %d\n", i+1, score)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", ranking.Best())
	if !updated.IsZero() {
		fmt.Fprintf(w, "Updated: %s\n", updated.Format("2006-01-02 15:04"))
	}
}
