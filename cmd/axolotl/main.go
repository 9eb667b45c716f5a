// axolotl keeps the Axolotl Dash top-10 high-score board.
//
// Usage:
//
//	axolotl scores             - Show the top 10
//	axolotl submit <score>     - Record a finished run's score
//	axolotl replay <events>    - Play a headless run from an event string
//	axolotl clear              - Reset the board
//	axolotl serve              - Start SSH server with a read-only scoreboard
//
// Global flags:
//
//	--config <path>     - Config YAML (default: ~/.axolotl/config.yaml)
//	--backend <name>    - Score store: file, sqlite or redis
//	--store <path>      - Path of the file or sqlite store
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/axolotl-dash/internal/config"
	"github.com/vovakirdan/axolotl-dash/internal/highscore"
	"github.com/vovakirdan/axolotl-dash/internal/storage"
)

var (
	// Global flags
	flagConfigPath string
	flagBackend    string
	flagStorePath  string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "axolotl",
	Short: "Axolotl Dash - top 10 high-score board",
	Long: `Axolotl Dash keeps a persistent top 10 of run scores.

Available commands:
  scores   - Show the board
  submit   - Record a finished run's score
  replay   - Play a headless run from an event string
  clear    - Reset the board
  serve    - Start SSH server showing the board

Examples:
  axolotl scores
  axolotl submit 420
  axolotl replay fffjtfjj
  axolotl --backend sqlite scores
  axolotl serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Score store backend: file, sqlite, redis")
	rootCmd.PersistentFlags().StringVar(&flagStorePath, "store", "", "Path of the file or sqlite store")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return cfg, err
	}

	if flagBackend != "" {
		cfg.Store.Backend = flagBackend
	}
	if flagStorePath != "" {
		if cfg.Store.Backend == storage.BackendSQLite {
			cfg.Store.SQLitePath = flagStorePath
		} else {
			cfg.Store.Path = flagStorePath
		}
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger builds the stderr logger for the configured level.
func newLogger(cfg config.LogConfig) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "axolotl",
	})
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.Level)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// app bundles what every subcommand needs.
type app struct {
	cfg    config.Config
	logger *log.Logger
	store  storage.Store
	ledger *highscore.Ledger
}

// setup loads config, builds the logger and opens the configured store.
// Failures are fatal: the command prints the error and exits.
func setup() *app {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)

	store, err := storage.Open(cfg.Store.StorageOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score store: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("store opened", "backend", cfg.Store.Backend)

	return &app{
		cfg:    cfg,
		logger: logger,
		store:  store,
		ledger: highscore.NewLedger(store),
	}
}

// load reads the board. A discarded store is logged and play continues
// with an empty board.
func (a *app) load() highscore.Ranking {
	ranking, err := a.ledger.Load()
	if err != nil {
		a.logger.Warn("stored high scores discarded", "error", err)
	}
	return ranking
}

// Close releases the store.
func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Debug("closing store", "error", err)
	}
}
