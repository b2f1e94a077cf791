package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/treat-hunt/internal/games/treats"
	"github.com/vovakirdan/treat-hunt/internal/platform/tui"
	"github.com/vovakirdan/treat-hunt/internal/platform/web"
	"github.com/vovakirdan/treat-hunt/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagHTTPAddr    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Treat Hunt SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own round. All sessions share one scores
database, and --http serves it as a JSON leaderboard:

  GET /api/rounds?limit=n   best rounds
  GET /api/rounds/{id}      one round
  GET /api/stats            totals

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.treathunt/host_key

Examples:
  treathunt serve                           # Listen on :23234 with auto-generated key
  treathunt serve --ssh :2222               # Listen on port 2222
  treathunt serve --http :8080              # Also serve the leaderboard
  treathunt serve --difficulty hard         # Every session plays hard

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP leaderboard address (disabled if empty)")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, err := loadGameConfig(); err != nil {
		logger.Fatal("invalid game config", "error", err)
	}

	var store tui.Store
	db, err := storage.Open(flagDBPath)
	switch {
	case err != nil && flagHTTPAddr != "":
		logger.Fatal("the HTTP leaderboard needs the scores database", "error", err)
	case err != nil:
		logger.Warn("could not open scores database, rounds will not be saved", "error", err)
	default:
		defer db.Close()
		store = db
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.GameID = treats.GameID
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		logger.Fatal("cannot create server", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.Serve(ctx) })
	if flagHTTPAddr != "" {
		api := web.NewServer(db, treats.GameID, logger)
		g.Go(func() error { return api.Serve(ctx, flagHTTPAddr) })
	}

	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := g.Wait(); err != nil {
		logger.Error("server error", "error", err)
		stop()
		os.Exit(1)
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
