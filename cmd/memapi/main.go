// memapi CLI - serve an in-memory REST backend from a seed file.
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

	"github.com/memapi/memapi/pkg/backend"
	"github.com/memapi/memapi/pkg/logging"
	"github.com/memapi/memapi/pkg/seed"
)

// Build-time variables set via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	seedPath  string
	port      int
	host      string
	rootPath  string
	delay     time.Duration
	delete404 bool
	logLevel  string
	logFormat string
}

var serveFlagVals serveFlags

var rootCmd = &cobra.Command{
	Use:           "memapi",
	Short:         "In-memory REST backend for development and testing",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a seed dataset as a REST API",
	Long: `Serve the collections in a seed file as a REST API.

Each top-level key in the seed file becomes a collection reachable at
/{base}/{collection}, answering GET/POST/PUT/DELETE with REST-correct
status codes and {"data": ...} / {"error": ...} JSON envelopes. All
state lives in memory and is discarded on exit.`,
	Example: `  # Serve db.yaml on the default port
  memapi serve --seed db.yaml

  # Emulate 200ms of network latency, 404 on deleting missing ids
  memapi serve --seed db.yaml --delay 200ms --delete-404

  # JSON logs for CI parsing
  memapi serve --seed db.yaml --log-format json`,
	RunE: runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "memapi %s (%s)\n", Version, Commit)
	},
}

func init() {
	f := &serveFlagVals

	serveCmd.Flags().StringVarP(&f.seedPath, "seed", "s", "", "Path to seed file (YAML or JSON) [required]")
	serveCmd.Flags().IntVarP(&f.port, "port", "p", 4280, "HTTP server port")
	serveCmd.Flags().StringVar(&f.host, "host", backend.DefaultHost, "Origin host the backend considers its own")
	serveCmd.Flags().StringVar(&f.rootPath, "root-path", "", "Path prefix stripped from request URLs (e.g. \"api\")")
	serveCmd.Flags().DurationVar(&f.delay, "delay", 0, "Simulated network latency per response")
	serveCmd.Flags().BoolVar(&f.delete404, "delete-404", false, "Answer 404 instead of 204 when deleting a missing id")
	serveCmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&f.logFormat, "log-format", "text", "Log format (text, json)")

	_ = serveCmd.MarkFlagRequired("seed")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	f := &serveFlagVals

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(f.logLevel),
		Format: logging.ParseFormat(f.logFormat),
	})

	factory, err := seed.LoadFile(f.seedPath)
	if err != nil {
		return err
	}

	svc := backend.New(factory, &backend.Config{
		Delay:     f.delay,
		Delete404: f.delete404,
		Host:      f.host,
		RootPath:  f.rootPath,
		Logger:    log,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", f.port),
		Handler:      backend.NewHandler(svc),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info("memapi started",
		"addr", srv.Addr,
		"seed", f.seedPath,
		"collections", svc.Database().Names(),
		"delay", f.delay,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
