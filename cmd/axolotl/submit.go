package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/axolotl-dash/internal/highscore"
)

var submitCmd = &cobra.Command{
	Use:   "submit <score>",
	Short: "Record a finished run's score",
	Long: `Submit the final score of a run to the board.

The score must be a non-negative integer. The board is loaded, the
score is ranked and the board is saved again.

Examples:
  axolotl submit 420
  axolotl --backend redis submit 17`,
	Args: cobra.ExactArgs(1),
	Run:  runSubmit,
}

// parseScore validates a score given on the command line.
func parseScore(arg string) (int, error) {
	score, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("score %q is not an integer", arg)
	}
	if score < 0 {
		return 0, fmt.Errorf("score %d is negative", score)
	}
	return score, nil
}

func runSubmit(_ *cobra.Command, args []string) {
	score, err := parseScore(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := setup()
	defer a.Close()

	sub, err := a.ledger.Record(a.load(), score)
	if err != nil {
		a.logger.Warn("high scores not saved", "error", err)
	}
	printSubmission(os.Stdout, score, sub)
}

// printSubmission reports where a score landed.
func printSubmission(w io.Writer, score int, sub highscore.Submission) {
	if !sub.Qualifies {
		fmt.Fprintf(w, "Score %d did not place (board minimum %d)\n", score, sub.Ranking[len(sub.Ranking)-1])
		return
	}
	fmt.Fprintf(w, "New High Score! %d ranks #%d\n", score, sub.Rank)
}
