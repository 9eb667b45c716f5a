package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/axolotl-dash/internal/config"
	"github.com/vovakirdan/axolotl-dash/internal/platform/tui"
)

var (
	flagSSHAddr string
	flagHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scoreboard SSH server",
	Long: `Start an SSH server that shows the high-score board.

Each SSH connection loads the board fresh from the configured store.
The server never writes scores.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses serve.host_key from the config
  - If neither is set, auto-generates a key at ~/.axolotl/host_key

Examples:
  axolotl serve                           # Listen on :23235
  axolotl serve --ssh :2222               # Listen on port 2222
  axolotl serve --host-key ./my_host_key  # Use specific host key
  axolotl --backend redis serve           # Show a shared redis board

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
}

func runServe(_ *cobra.Command, _ []string) {
	a := setup()
	defer a.Close()

	cfg := serverConfig(a.cfg.Serve)

	server, err := tui.NewSSHServer(cfg, a.ledger, a.logger.WithPrefix("axolotl-ssh"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting scoreboard SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// serverConfig overlays the serve section and the command flags on the
// server defaults. Empty or zero values keep the default.
func serverConfig(serve config.ServeConfig) tui.SSHServerConfig {
	cfg := tui.DefaultSSHServerConfig()
	if serve.Address != "" {
		cfg.Address = serve.Address
	}
	if serve.IdleTimeout > 0 {
		cfg.IdleTimeout = serve.IdleTimeout
	}
	cfg.HostKeyPath = serve.HostKeyPath

	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	return cfg
}
