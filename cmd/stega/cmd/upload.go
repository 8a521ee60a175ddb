package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/stega/pkg/stega"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Copy a PNG file into the server storage",
	Long: `Copy a PNG file into the storage backend configured for the server and
print the name it is served under.

Example:
  stega upload image.png --config ./stega.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if container == nil {
			return errors.New("dependency container not initialized")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		cfg := configFrom(cmd)
		store, err := container.OpenStorage(cfg)
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		defer store.Close()

		name, err := stega.NewService(store).Upload(cmd.Context(), data)
		if err != nil {
			return userError(err, "")
		}

		logger := loggerFrom(cmd)
		logger.Debug().Str("backend", cfg.Storage.Backend).Str("name", name).Msg("stored image")
		cmd.Printf("%s\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
