package main

import (
	"context"
	"errors"
	"fmt"
	"log-tail-service/internal/adapters/logfile"
	"log-tail-service/internal/api"
	"log-tail-service/internal/config"
	"log-tail-service/internal/platform/logging"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type serverFlags struct {
	dataFile string
	port     string
	logLevel string
}

func newRootCommand() *cobra.Command {
	var flags serverFlags

	cmd := &cobra.Command{
		Use:           "log-tail-server",
		Short:         "Serve the tail of a log file over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, dotenvFound, err := resolveConfig(flags)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, dotenvFound)
		},
	}

	cmd.Flags().StringVar(&flags.dataFile, "data-file", "", "Path to the log file (overrides DATA_FILE)")
	cmd.Flags().StringVar(&flags.port, "port", "", "HTTP listen port (overrides PORT)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")

	return cmd
}

// resolveConfig layers command-line flags over .env and process environment.
// It reports whether a .env file was found so the caller can log its absence.
func resolveConfig(flags serverFlags) (config.Config, bool, error) {
	dotenvFound := true
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config.Config{}, false, fmt.Errorf("load .env: %w", err)
		}
		dotenvFound = false
	}

	cfg := config.FromEnv()
	if flags.dataFile != "" {
		cfg.DataFile = flags.dataFile
	}
	if flags.port != "" {
		cfg.Port = flags.port
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, dotenvFound, err
	}
	return cfg, dotenvFound, nil
}

func run(ctx context.Context, cfg config.Config, dotenvFound bool) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logStartup(logger, dotenvFound)

	reader := logfile.NewFileTailReader(cfg.DataFile, logger)
	router := api.NewRouter(reader, logger)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("data_file", cfg.DataFile))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func logStartup(logger *zap.Logger, dotenvFound bool) {
	if !dotenvFound {
		logger.Info("No .env file found (using environment variables)")
	}
}
