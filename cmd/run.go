package cmd

import (
	"context"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/streamflix-cli/streamflix/inline"
	"github.com/streamflix-cli/streamflix/provider/custom"
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("search", "s", "", "Call Search with this keyword instead of Hot")
}

// runCmd loads a local Lua provider and prints what its listing renders to.
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute a local Lua provider script",
	Long: `Load a Lua provider script, check that it defines every required function
and print the rendered result of one listing call. Useful for provider development.`,
	Args:    cobra.ExactArgs(1),
	Example: "  streamflix run ./provider.lua --search dune",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := custom.LoadSource(args[0])
		handleErr(err)
		if closer, ok := src.(interface{ Close() }); ok {
			defer closer.Close()
		}

		options := inline.Options{
			Out:     os.Stdout,
			Source:  src,
			Json:    true,
			Command: inline.Hot,
		}

		if keyword := lo.Must(cmd.Flags().GetString("search")); keyword != "" {
			options.Command = inline.Search
			options.Query = keyword
		}

		handleErr(inline.Run(context.Background(), &options))
	},
}
