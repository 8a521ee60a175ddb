package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ssargent/stega/pkg/api"
	"github.com/ssargent/stega/pkg/config"
	"github.com/ssargent/stega/pkg/stega"
	"github.com/ssargent/stega/pkg/storage"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the stega REST API server.

Uploaded images are kept in the configured storage backend (file or pebble)
and addressed by name. When an API key is configured every route except
/, /status, /metrics and /swagger requires the X-API-Key header.

Examples:
  stega serve
  stega serve --port=8080 --backend=pebble --data-dir=./data
  stega serve --config ./stega.toml --api-key=mysecretkey`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFrom(cmd)
		applyServeFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}

		if container == nil {
			return errors.New("dependency container not initialized")
		}
		store, err := container.OpenStorage(cfg)
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		defer store.Close()

		logger := loggerFrom(cmd)
		server, registry := buildServer(cfg, store, logger)

		if cfg.Security.APIKey == "" {
			logger.Warn().Msg("no api key configured, the API is open")
		}
		logger.Info().
			Str("backend", cfg.Storage.Backend).
			Str("storage_path", cfg.StoragePath()).
			Msg("storage ready")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return api.StartServer(ctx, server, registry)
	},
}

// applyServeFlags overrides config values with flags given on the command line.
func applyServeFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("bind") {
		cfg.Bind, _ = flags.GetString("bind")
	}
	if flags.Changed("data-dir") {
		cfg.DataDir, _ = flags.GetString("data-dir")
	}
	if flags.Changed("backend") {
		cfg.Storage.Backend, _ = flags.GetString("backend")
	}
	if flags.Changed("api-key") {
		cfg.Security.APIKey, _ = flags.GetString("api-key")
	}
}

// buildServer wires a service over store into an API server with its own
// metrics registry.
func buildServer(cfg *config.Config, store storage.Storage, logger zerolog.Logger) (*api.Server, *prometheus.Registry) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	server := api.NewServer(stega.NewService(store), api.ServerConfig{
		Addr:           cfg.Addr(),
		APIKey:         cfg.Security.APIKey,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, api.NewMetrics(registry), logger)

	return server, registry
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8000, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().StringP("data-dir", "d", "./data", "Data directory for stored images")
	serveCmd.Flags().String("backend", config.BackendFile, "Storage backend (file or pebble)")
	serveCmd.Flags().String("api-key", "", "API key required by protected routes")
}
