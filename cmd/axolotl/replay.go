package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/axolotl-dash/internal/highscore"
	"github.com/vovakirdan/axolotl-dash/internal/platform/tui"
	"github.com/vovakirdan/axolotl-dash/internal/session"
)

var flagBoard bool

var replayCmd = &cobra.Command{
	Use:   "replay <events>",
	Short: "Play a headless run from an event string",
	Long: `Replay a recorded run and submit its score.

Each character is one event:
  f  - Collect a starfruit (+1 point)
  t  - Pick up a turtle shield
  j  - Get stung by a jellyfish

Whitespace is ignored. The run ends when lives run out or the events
do; its score is recorded exactly once.

Examples:
  axolotl replay fffjtfjj
  axolotl replay "ff tj fj" --board`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagBoard, "board", false, "Show the board with this run highlighted")
}

func runReplay(_ *cobra.Command, args []string) {
	a := setup()
	defer a.Close()

	s := session.New(a.ledger, a.load(), a.logger)
	if err := s.Replay(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	run := s.Run()
	fmt.Printf("Game over! Score: %d  Lives left: %d\n", run.Score, run.Lives)
	if run.NewHigh {
		fmt.Printf("New High Score! Rank #%d\n", run.Rank)
	} else {
		fmt.Println("Did not place on the board.")
	}

	if !flagBoard {
		return
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println()
		printScores(os.Stdout, s.Ranking(), time.Time{}, s.Highlight)
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	hl := tui.Highlight{}
	if run.NewHigh {
		hl = tui.Highlight{Rank: run.Rank, Score: run.Score}
	}
	if err := tui.RunScoreboard(sessionBoard(s.Ranking()), width, height, hl, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		os.Exit(1)
	}
}

// sessionBoard serves the session's in-memory ranking to the scoreboard,
// so the board matches the run even when saving it failed.
type sessionBoard highscore.Ranking

func (b sessionBoard) Load() (highscore.Ranking, error) {
	return highscore.Ranking(b).Clone(), nil
}
