package cmd

import (
	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <path> <chunk-type> <message>",
	Short: "Hide a message in a PNG file",
	Long: `Append a chunk of the given type holding the message. The IEND chunk
is kept last.

Example:
  stega encode image.png ruSt "hello there"`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, chunkType, message := args[0], args[1], args[2]

		service, err := localService()
		if err != nil {
			return err
		}
		if err := service.Encode(cmd.Context(), path, chunkType, message); err != nil {
			return userError(err, chunkType)
		}

		logger := loggerFrom(cmd)
		logger.Debug().Str("path", path).Str("chunk_type", chunkType).Int("bytes", len(message)).Msg("encoded message")
		cmd.Printf("Encoding successful!\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
