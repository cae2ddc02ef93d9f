// Package cmd implements the command-line interface for streamflix.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/color"
	"github.com/streamflix-cli/streamflix/constant"
	"github.com/streamflix-cli/streamflix/icon"
	"github.com/streamflix-cli/streamflix/key"
	"github.com/streamflix-cli/streamflix/log"
	"github.com/streamflix-cli/streamflix/player"
	"github.com/streamflix-cli/streamflix/provider"
	"github.com/streamflix-cli/streamflix/query"
	"github.com/streamflix-cli/streamflix/style"
	"github.com/streamflix-cli/streamflix/tui"
	"github.com/streamflix-cli/streamflix/util"
	"github.com/streamflix-cli/streamflix/version"
	"github.com/streamflix-cli/streamflix/where"
)

func completionProviders(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(provider.All(), func(p *provider.Provider, _ int) string {
		return p.Name
	}), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("provider", "P", "", "Content provider to browse")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("provider", completionProviders))
	lo.Must0(viper.BindPFlag(key.DefaultProvider, rootCmd.PersistentFlags().Lookup("provider")))

	rootCmd.PersistentFlags().String("player", "", "Media player used for playback")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("player", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return player.Available(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.Player, rootCmd.PersistentFlags().Lookup("player")))

	rootCmd.PersistentFlags().Bool("autoplay", true, "Start playback as soon as a stream link is resolved")
	lo.Must0(viper.BindPFlag(key.PlayerAutoplay, rootCmd.PersistentFlags().Lookup("autoplay")))

	rootCmd.Flags().StringP("query", "q", "", "Search for a title right away")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Stale player sockets from previous sessions.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the streamflix application.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Browse and stream movies and series from the terminal",
	Long: constant.Logo + "\n\n" +
		style.New().Italic(true).Foreground(style.Brand).Render("    - Browse and stream movies and series from the terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		checkPlayer()

		options := tui.Options{
			Keyword: lo.Must(cmd.Flags().GetString("query")),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiRed + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
