package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jwalitptl/clinic-records/internal/config"
	"github.com/jwalitptl/clinic-records/internal/middleware"
	"github.com/jwalitptl/clinic-records/internal/repository/sqlstore"
	"github.com/jwalitptl/clinic-records/internal/router"
	"github.com/jwalitptl/clinic-records/pkg/logger"
	"github.com/jwalitptl/clinic-records/pkg/metrics"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "clinic",
		Short:        "Clinic records web application",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: config.yml in . or ./config)")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(migrateCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Create the schema if needed and start the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runServer(cfg)
		},
	}
}

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			db, err := sqlstore.NewDB(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := sqlstore.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			log.Info().Str("driver", cfg.Database.Driver).Msg("schema is up to date")
			return nil
		},
	}
}

// loadConfig reads .env (when present) before the config so its variables
// can override file values, then installs the global logger.
func loadConfig(path string) (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		return nil, err
	}

	logger.Init(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	return cfg, nil
}

func runServer(cfg *config.Config) error {
	ctx := context.Background()

	// Initialize database
	db, err := sqlstore.NewDB(cfg.Database)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to database")
		return err
	}
	defer db.Close()

	if err := sqlstore.Migrate(ctx, db); err != nil {
		log.Error().Err(err).Msg("failed to create schema")
		return err
	}

	m := metrics.New("clinic")

	limiter, closeLimiter, err := newLimiter(ctx, cfg.RateLimit)
	if err != nil {
		return err
	}
	defer closeLimiter()

	r, err := router.Build(db, cfg, m, limiter)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("driver", cfg.Database.Driver).
			Str("reference_policy", cfg.Database.ReferencePolicy).
			Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		log.Error().Err(err).Msg("failed to start server")
		return err
	case <-quit:
	}
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}

// newLimiter picks the shared Redis limiter when a URL is configured and the
// in-process one otherwise.
func newLimiter(ctx context.Context, cfg config.RateLimitConfig) (middleware.Limiter, func(), error) {
	noop := func() {}
	if !cfg.Enabled {
		return nil, noop, nil
	}

	if cfg.RedisURL == "" {
		return middleware.NewMemoryLimiter(cfg.RPS, cfg.Burst, cfg.ClientTTL), noop, nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	client, err := middleware.NewRedisClient(pingCtx, cfg.RedisURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to Redis")
		return nil, noop, err
	}
	// Burst requests per one-second window.
	limiter := middleware.NewRedisLimiter(client, cfg.Burst, time.Second)
	return limiter, func() { client.Close() }, nil
}
