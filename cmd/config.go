package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/auth"
	"github.com/streamflix-cli/streamflix/color"
	"github.com/streamflix-cli/streamflix/config"
	"github.com/streamflix-cli/streamflix/filesystem"
	"github.com/streamflix-cli/streamflix/icon"
	keys "github.com/streamflix-cli/streamflix/key"
	"github.com/streamflix-cli/streamflix/style"
)

func completionConfigNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return append(lo.Keys(config.Default), config.Groups()...), cobra.ShellCompDirectiveNoFileComp
}

// configError highlights the name in unknown key errors.
func configError(err error) error {
	var unknown *config.UnknownKeyError
	if errors.As(err, &unknown) {
		return fmt.Errorf(
			"unknown key %s, did you mean %s?",
			style.Fg(color.Red)(unknown.Name),
			style.Fg(color.Yellow)(unknown.Closest),
		)
	}
	return err
}

// apiKeyValue is the key requests will actually use, masked, with where it came from.
func apiKeyValue() (string, string) {
	apiKey, origin := auth.ResolveWithOrigin()
	value, ok := apiKey.Get()
	if !ok {
		return "", "none"
	}

	if origin == auth.FromConfig {
		return auth.Mask(value), string(config.SourceOf(config.Default[keys.APIKey]))
	}
	return auth.Mask(value), string(origin)
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
	Long: fmt.Sprintf(`Inspect and change settings.
Settings are read from %s, then from STREAMFLIX_* environment variables.
Names are full keys such as api.timeout or whole groups such as player.`, style.Fg(color.Purple)("streamflix.toml")),
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().BoolP("json", "j", false, "print fields as json")
}

var configInfoCmd = &cobra.Command{
	Use:               "info [key or group]...",
	Short:             "Describe settings",
	Example:           "  streamflix config info api player.autoplay",
	ValidArgsFunction: completionConfigNames,
	Run: func(cmd *cobra.Command, args []string) {
		fields, err := config.Select(args...)
		handleErr(configError(err))

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(fields))
			return
		}

		group := ""
		for i, field := range fields {
			if field.Group() != group {
				group = field.Group()
				cmd.Println(style.Tag(color.Purple, color.White)(strings.ToUpper(group)))
				cmd.Println()
			}

			cmd.Print(field.Pretty())
			if i < len(fields)-1 {
				cmd.Println()
				cmd.Println()
			}
		}
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().BoolP("origin", "o", false, "also print where each value comes from")
}

var configGetCmd = &cobra.Command{
	Use:               "get [key or group]...",
	Short:             "Print current values",
	Example:           "  streamflix config get search\n  streamflix config get api.key --origin",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completionConfigNames,
	Run: func(cmd *cobra.Command, args []string) {
		fields, err := config.Select(args...)
		handleErr(configError(err))

		withOrigin := lo.Must(cmd.Flags().GetBool("origin"))
		for _, field := range fields {
			var value, origin string
			if field.Key == keys.APIKey {
				value, origin = apiKeyValue()
			} else {
				value, origin = fmt.Sprint(viper.Get(field.Key)), string(config.SourceOf(field))
			}

			line := value
			if len(fields) > 1 {
				line = fmt.Sprintf("%s = %s", style.Fg(color.Purple)(field.Key), value)
			}
			if withOrigin {
				line += " " + style.Faint("("+origin+")")
			}
			cmd.Println(line)
		}
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>...",
	Short:             "Change a setting and save it",
	Example:           "  streamflix config set api.timeout 30s\n  streamflix config set player.args -- --fs --mute",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completionConfigNames,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := config.Lookup(args[0])
		handleErr(configError(err))

		value, err := config.Parse(field, args[1:])
		handleErr(err)

		viper.Set(field.Key, value)
		handleErr(config.Save())

		shown := fmt.Sprint(value)
		if field.Key == keys.APIKey {
			shown = auth.Mask(shown)
		}

		cmd.Printf(
			"%s set %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(field.Key),
			style.Fg(color.Yellow)(shown),
		)

		if field.Key == keys.APIKey {
			cmd.Println(style.Faint("the config file is plain text, consider \"streamflix auth set\" instead"))
		}
		if config.SourceOf(field) == config.FromEnv {
			cmd.Printf("%s %s overrides this value\n", style.Fg(color.Yellow)(icon.Get(icon.Info)), field.Env())
		}
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().BoolP("all", "a", false, "reset every setting")
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key or group]...",
	Short:             "Restore default values and save them",
	Example:           "  streamflix config reset tui\n  streamflix config reset --all",
	ValidArgsFunction: completionConfigNames,
	PreRun: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		if all == (len(args) > 0) {
			handleErr(errors.New("pass either names or --all"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		fields, err := config.Select(args...)
		handleErr(configError(err))

		for _, field := range fields {
			viper.Set(field.Key, field.Value)
		}
		handleErr(config.Save())

		for _, field := range fields {
			cmd.Printf(
				"%s reset %s to %s\n",
				style.Fg(color.Green)(icon.Get(icon.Success)),
				style.Fg(color.Purple)(field.Key),
				style.Fg(color.Yellow)(fmt.Sprint(field.Value)),
			)
		}
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "overwrite an existing file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current settings to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := config.Path()

		if lo.Must(cmd.Flags().GetBool("force")) {
			if exists, _ := filesystem.API().Exists(path); exists {
				handleErr(filesystem.API().Remove(path))
			}
		}

		handleErr(viper.SafeWriteConfig())
		cmd.Printf(
			"%s wrote config to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			path,
		)
	},
}
