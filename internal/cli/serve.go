package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"algoviz/internal/logger"
	"algoviz/internal/server"
)

var serveAddr string

func newServeCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the solver as a JSON HTTP service",
		Long: `Start the solver service the TUI can talk to over HTTP. The service
exposes the N-Queens endpoints (solve, validate, hint, solutions) and
the Rabin-Karp search endpoint. Press Ctrl+C to stop.

Examples:
  algoviz serve
  algoviz serve --addr :9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(version)
		},
	}

	cmd.Flags().StringVar(&serveAddr, "addr", ":8711", "listen address")

	return cmd
}

func runServe(version string) error {
	log := logger.NewWithCallback("serve", isVerbose)
	srv := server.New(serveAddr, version, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info("received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
