package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	hodos "github.com/quez2777/hodos-360-website"
	"github.com/quez2777/hodos-360-website/api"
	"github.com/quez2777/hodos-360-website/internal/adapters"
	httpadapter "github.com/quez2777/hodos-360-website/internal/adapters/http"
	"github.com/quez2777/hodos-360-website/internal/adapters/memory"
	redisstore "github.com/quez2777/hodos-360-website/internal/adapters/redis"
	"github.com/quez2777/hodos-360-website/internal/config"
	"github.com/quez2777/hodos-360-website/internal/logging"
	"github.com/quez2777/hodos-360-website/internal/observability"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the demo HTTP server",
	Long:  `Starts the HODOS 360 demo as a stateless HTTP server, exposing the action catalog and invocations as a JSON API alongside the demo page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		verbose, _ := cmd.Flags().GetBool("verbose")
		listen, _ := cmd.Flags().GetString("listen")

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		if cmd.Flags().Changed("listen") {
			cfg.Listen = listen
		}

		// Fail fast on a broken contract document rather than serving it.
		if _, err := api.Load(cmd.Context()); err != nil {
			return fmt.Errorf("validating OpenAPI document: %w", err)
		}

		tracer, err := observability.NewTracer(cmd.Context())
		if err != nil {
			return fmt.Errorf("initializing tracing: %w", err)
		}
		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

		demo, err := hodos.New(
			hodos.WithLogger(logger),
			hodos.WithTimeout(cfg.ActionTimeout),
			hodos.WithTemplateDir(cfg.TemplateDir),
			hodos.WithHooks(metrics.Hooks(tracer)),
		)
		if err != nil {
			return fmt.Errorf("initializing demo: %w", err)
		}

		store, err := newSnapshotStore(cfg.Share)
		if err != nil {
			return fmt.Errorf("initializing snapshot store: %w", err)
		}
		defer store.Close()

		handler := httpadapter.NewHandler(demo,
			httpadapter.WithSnapshotStore(store),
			httpadapter.WithBaseURL(cfg.BaseURL),
			httpadapter.WithTheme(cfg.Theme),
			httpadapter.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting demo server", "addr", srv.Addr, "actions", len(demo.Actions()))
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("closing server: %w", err)
				}
			}
			if tracer != nil {
				if err := tracer.Shutdown(ctx); err != nil {
					logger.Error("flushing traces", "error", err)
				}
			}
			logger.Info("demo server stopped gracefully")
		}
		return nil
	},
}

func newSnapshotStore(share config.Share) (adapters.SnapshotStore, error) {
	switch share.Backend {
	case "redis":
		return redisstore.New(share.Redis.Address, share.Redis.Password, share.Redis.DB,
			redisstore.WithTTL(share.TTL)), nil
	case "memory":
		return memory.New(memory.WithTTL(share.TTL)), nil
	default:
		return nil, fmt.Errorf("unknown share backend %q", share.Backend)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", ":7860", "Address to listen on (overrides config)")
}
