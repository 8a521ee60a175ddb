package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ssargent/stega/pkg/stega"
)

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:     "remove <path> <chunk-type>",
	Aliases: []string{"rm"},
	Short:   "Remove a chunk from a PNG file",
	Long: `Remove the first chunk of the given type.

Example:
  stega remove image.png ruSt`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, chunkType := args[0], args[1]

		service, err := localService()
		if err != nil {
			return err
		}
		if err := service.Remove(cmd.Context(), path, chunkType); err != nil {
			return errors.New(stega.RemoveMessage(err, chunkType))
		}

		cmd.Printf("Chunk %s removal successful!\n", chunkType)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
