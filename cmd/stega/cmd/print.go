package cmd

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// printCmd represents the print command
var printCmd = &cobra.Command{
	Use:   "print <path>",
	Short: "List the chunks of a PNG file",
	Long: `List the type of every chunk in a PNG file, in file order.

Examples:
  stega print image.png
  stega print image.png --verbose
  stega print image.png --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		asJSON, _ := cmd.Flags().GetBool("json")

		service, err := localService()
		if err != nil {
			return err
		}

		if verbose {
			infos, err := service.Inspect(cmd.Context(), args[0])
			if err != nil {
				return userError(err, "")
			}
			if asJSON {
				return writeJSON(cmd, infos)
			}
			for _, info := range infos {
				cmd.Printf("%3d  %s  length=%d crc=%08x critical=%t public=%t safe_to_copy=%t\n",
					info.Index, info.Type, info.Length, info.CRC, info.Critical, info.Public, info.SafeToCopy)
			}
			return nil
		}

		types, err := service.Print(cmd.Context(), args[0])
		if err != nil {
			return userError(err, "")
		}
		if asJSON {
			return writeJSON(cmd, types)
		}
		for _, t := range types {
			cmd.Println(t)
		}
		return nil
	},
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.AddCommand(printCmd)
	printCmd.Flags().BoolP("verbose", "v", false, "Show length, checksum and property bits of each chunk")
	printCmd.Flags().Bool("json", false, "Print as JSON")
}
