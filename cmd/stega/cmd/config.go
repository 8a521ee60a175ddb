package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/stega/pkg/config"
	"github.com/ssargent/stega/pkg/logging"
)

// configCmd groups configuration commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the stega configuration file",
	// The config file may not exist yet, so only the logger is set up.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		logger := logging.New("stega", level, cmd.ErrOrStderr())
		cmd.SetContext(logger.WithContext(cmd.Context()))
		return nil
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration with a generated API key",
	Long: `Write a default configuration file with a freshly generated API key.

The file format follows the extension: .toml files are written as TOML,
anything else as YAML.

Examples:
  stega config init
  stega config init --config ./stega.toml --data-dir ./data
  stega config init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = config.GetDefaultConfigPath()
		}
		dataDir, _ := cmd.Flags().GetString("data-dir")
		force, _ := cmd.Flags().GetBool("force")

		if config.ConfigExists(path) && !force {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}

		cfg, err := config.BootstrapConfig(path, dataDir)
		if err != nil {
			return err
		}

		logger := loggerFrom(cmd)
		logger.Debug().Str("path", path).Msg("wrote config")
		cmd.Printf("Config written to %s\n", path)
		cmd.Printf("Data directory: %s\n", cfg.DataDir)
		cmd.Printf("API key: %s\n", cfg.Security.APIKey)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().StringP("data-dir", "d", "", "Data directory to record in the config")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
