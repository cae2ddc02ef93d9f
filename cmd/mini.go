package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/streamflix-cli/streamflix/mini"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().StringP("query", "q", "", "Search for a title right away")
}

// miniCmd launches the prompt-driven interface.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Launch the application in a lightweight, prompt-driven interface",
	Long:  `Browse hot titles, search and play through a sequence of simple prompts.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkPlayer()

		options := mini.Options{
			Keyword: lo.Must(cmd.Flags().GetString("query")),
		}
		handleErr(mini.Run(&options))
	},
}
