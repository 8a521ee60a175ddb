package cmd

import (
	"github.com/spf13/cobra"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <path> <chunk-type>",
	Short: "Read a hidden message from a PNG file",
	Long: `Print the data of the first chunk of the given type as text.

Example:
  stega decode image.png ruSt`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, chunkType := args[0], args[1]

		service, err := localService()
		if err != nil {
			return err
		}
		message, err := service.Decode(cmd.Context(), path, chunkType)
		if err != nil {
			return userError(err, chunkType)
		}

		cmd.Printf("%s\n", message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
