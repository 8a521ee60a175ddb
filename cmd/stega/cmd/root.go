package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ssargent/stega/pkg/config"
	"github.com/ssargent/stega/pkg/di"
	"github.com/ssargent/stega/pkg/logging"
	"github.com/ssargent/stega/pkg/stega"
)

type contextKey string

const configKey contextKey = "config"

var container *di.Container

// SetContainer sets the dependency injection container
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stega",
	Short: "stega - hide messages in PNG chunks",
	Long: `stega stores text messages in ancillary PNG chunks and reads them back.

Images are addressed by path on the command line. The serve command exposes
the same operations over a REST API backed by file or pebble storage.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default is $HOME/.config/stega/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
}

// loadConfig reads the config file, installs the logger and stores the
// config in the command context. A missing default config file is not an
// error.
func loadConfig(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if !explicit {
		path = config.GetDefaultConfigPath()
	}

	cfg := config.DefaultConfig()
	if explicit || config.ConfigExists(path) {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	logger := logging.New("stega", cfg.Logging.Level, cmd.ErrOrStderr())
	logger.Debug().Str("config", path).Bool("loaded", explicit || config.ConfigExists(path)).Msg("configuration ready")

	ctx := context.WithValue(cmd.Context(), configKey, cfg)
	cmd.SetContext(logger.WithContext(ctx))
	return nil
}

func configFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey).(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

func loggerFrom(cmd *cobra.Command) zerolog.Logger {
	return *zerolog.Ctx(cmd.Context())
}

// localService returns a service over path-addressed images.
func localService() (*stega.Service, error) {
	if container == nil {
		return nil, errors.New("dependency container not initialized")
	}
	return stega.NewService(container.LocalStorage()), nil
}

// userError converts a command failure into the text shown to the user.
func userError(err error, chunkType string) error {
	return errors.New(stega.Message(err, chunkType))
}
