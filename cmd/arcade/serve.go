package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/kids-arcade/internal/api"
	"github.com/vovakirdan/kids-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the arcade over SSH and HTTP",
	Long: `Start an SSH server that allows users to connect and play games, and
optionally an HTTP API with the game catalogue, records, live sessions and
headless simulation.

Each SSH connection gets their own session with a game picker menu.
Records are shared by every player on the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  arcade serve                           # SSH on :23234 with auto-generated key
  arcade serve --ssh :2222               # Listen on port 2222
  arcade serve --http :8080              # Also serve the HTTP API
  arcade serve --ssh "" --http :8080     # HTTP API only
  arcade serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port, empty disables)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP API address (host:port, empty disables)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 64, "Maximum live HTTP sessions")
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagSSHAddr == "" && flagHTTPAddr == "" {
		return errors.New("nothing to serve: set --ssh or --http")
	}

	logger, closeLog, err := newLogger("arcade")
	if err != nil {
		return err
	}
	defer closeLog()

	book, store := openBook(logger)
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	if flagSSHAddr != "" {
		sshServer, err := tui.NewSSHServer(tui.SSHServerConfig{
			Address:     flagSSHAddr,
			HostKeyPath: flagHostKey,
			IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
			Preset:      flagDifficulty,
			Logger:      logger.WithPrefix("ssh"),
			Book:        book,
			Store:       store,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Arcade SSH server on %s\n", flagSSHAddr)
		g.Go(func() error { return sshServer.ListenAndServe(ctx) })
	}

	if flagHTTPAddr != "" {
		apiServer := api.NewServer(api.Options{
			Book:        book,
			Store:       store,
			Logger:      logger.WithPrefix("http"),
			Preset:      flagDifficulty,
			MaxSessions: flagMaxSessions,
		})
		defer apiServer.Close()

		httpServer := &http.Server{
			Addr:              flagHTTPAddr,
			Handler:           apiServer.Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		fmt.Printf("Arcade HTTP API on %s\n", flagHTTPAddr)
		g.Go(func() error {
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		})
	}

	fmt.Println("Press Ctrl+C to stop")
	return g.Wait()
}
