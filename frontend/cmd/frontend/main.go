// cmd/frontend/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/aleka07/edge-frontend/frontend/pkg/api"
	"github.com/aleka07/edge-frontend/frontend/pkg/backend"
	"github.com/aleka07/edge-frontend/frontend/pkg/config"
	"github.com/aleka07/edge-frontend/frontend/pkg/logging"
	"github.com/aleka07/edge-frontend/frontend/pkg/metrics"
)

// Version is set during build using ldflags
var Version = "dev"

const shutdownTimeout = 15 * time.Second

func main() {
	// .env is optional; variables already in the environment win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "WARN: failed to load .env: %v\n", err)
	}

	if err := newCommand(run).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newCommand resolves the configuration from flags and environment and
// hands it to start.
func newCommand(start func(ctx context.Context, cfg config.Config) error) *cli.Command {
	return &cli.Command{
		Name:    "frontend",
		Version: Version,
		Usage:   "Serve the landing page and proxy /api/data to the backend",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Usage:   "TCP port to listen on",
				Value:   config.DefaultListenPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    "backend-url",
				Usage:   "Base URL of the backend service",
				Value:   config.DefaultBackendBaseURL,
				Sources: cli.EnvVars("BACKEND_URL"),
			},
			&cli.DurationFlag{
				Name:    "backend-timeout",
				Usage:   "Upper bound for a single backend call",
				Value:   config.DefaultBackendTimeout,
				Sources: cli.EnvVars("BACKEND_TIMEOUT"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "One of trace, debug, info, warn, error",
				Value:   config.DefaultLogLevel,
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "text or json",
				Value:   config.DefaultLogFormat,
				Sources: cli.EnvVars("LOG_FORMAT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.New(config.Config{
				ListenPort:     cmd.Int("port"),
				BackendBaseURL: cmd.String("backend-url"),
				BackendTimeout: cmd.Duration("backend-timeout"),
				LogLevel:       cmd.String("log-level"),
				LogFormat:      cmd.String("log-format"),
			})
			if err != nil {
				return err
			}
			return start(ctx, cfg)
		},
	}
}

// run serves until ctx is canceled or SIGINT/SIGTERM arrives.
func run(ctx context.Context, cfg config.Config) error {
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, nil)
	slog.SetDefault(logger)

	if err := cfg.ValidateBackendURL(); err != nil {
		logger.Warn("Backend URL is unusable, /api/data will fail until it is fixed", "error", err)
	}

	// --- Create Dependencies ---
	client := backend.NewClient(cfg.DataURL(), cfg.BackendTimeout)
	apiServer, err := api.NewServer(cfg, client, metrics.NewMetrics(), logger)
	if err != nil {
		return err
	}

	// --- Configure and Start Server ---
	server := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           apiServer.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.BackendTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Frontend server running", "port", cfg.ListenPort, "backend_url", cfg.BackendBaseURL)
		serverErrors <- server.ListenAndServe()
	}()

	// --- Graceful Shutdown ---
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-shutdown:
		logger.Info("Shutdown signal received, starting graceful shutdown", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("Context canceled, starting graceful shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful server shutdown failed", "error", err)
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("Server Close() failed", "error", closeErr)
		}
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server shutdown complete")
	return nil
}
