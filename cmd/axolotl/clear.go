package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/axolotl-dash/internal/highscore"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset the high-score board",
	Long: `Overwrite the configured store with an empty board.

Examples:
  axolotl clear
  axolotl --backend sqlite clear`,
	Args: cobra.NoArgs,
	Run:  runClear,
}

func runClear(_ *cobra.Command, _ []string) {
	a := setup()
	defer a.Close()

	if err := a.ledger.Save(highscore.Ranking{}); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
		os.Exit(1)
	}
	a.logger.Info("high scores cleared", "backend", a.cfg.Store.Backend)
}
