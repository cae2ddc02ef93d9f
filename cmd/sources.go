package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/color"
	"github.com/streamflix-cli/streamflix/constant"
	"github.com/streamflix-cli/streamflix/filesystem"
	"github.com/streamflix-cli/streamflix/icon"
	"github.com/streamflix-cli/streamflix/key"
	"github.com/streamflix-cli/streamflix/provider"
	"github.com/streamflix-cli/streamflix/style"
	"github.com/streamflix-cli/streamflix/util"
	"github.com/streamflix-cli/streamflix/where"
)

const luaExtension = ".lua"

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// sourcesCmd groups provider management.
var sourcesCmd = &cobra.Command{
	Use:     "sources",
	Aliases: []string{"providers"},
	Short:   "Manage built-in and custom content providers",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Suppress headers in the output")
	sourcesListCmd.Flags().BoolP("custom", "c", false, "Display only custom Lua providers")
	sourcesListCmd.Flags().BoolP("builtin", "b", false, "Display only built-in providers")

	sourcesListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	sourcesListCmd.SetOut(os.Stdout)
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display all registered content providers",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		h := func(s string) {
			if !raw {
				cmd.Println(headerStyle(s))
			}
		}

		current := viper.GetString(key.DefaultProvider)
		line := func(p *provider.Provider) {
			if !raw && p.Name == current {
				cmd.Println(p.Name + " " + style.Fg(color.Green)(icon.Get(icon.Mark)))
				return
			}
			cmd.Println(p.Name)
		}

		printBuiltin := func() {
			h("Builtin:")
			lo.ForEach(provider.Builtins(), func(p *provider.Provider, _ int) { line(p) })
		}

		printCustom := func() {
			h("Custom:")
			lo.ForEach(provider.Customs(), func(p *provider.Provider, _ int) { line(p) })
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printBuiltin()
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			printBuiltin()
			if !raw {
				cmd.Println()
			}
			printCustom()
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesRemoveCmd)

	sourcesRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Name of the custom provider(s) to remove")
	lo.Must0(sourcesRemoveCmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(provider.Customs(), func(p *provider.Provider, _ int) string {
			return p.Name
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove custom Lua providers",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Providers(), name+luaExtension)
			handleErr(filesystem.API().Remove(path))
			fmt.Printf("%s removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesGenCmd)

	sourcesGenCmd.Flags().StringP("name", "n", "", "Display name of the new provider")
	sourcesGenCmd.Flags().StringP("url", "u", "", "Base URL of the API the provider talks to")

	lo.Must0(sourcesGenCmd.MarkFlagRequired("name"))
	lo.Must0(sourcesGenCmd.MarkFlagRequired("url"))
}

// sourcesGenCmd scaffolds a Lua provider script.
var sourcesGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Scaffold a new Lua provider script",
	Long:  `Generate a Lua provider script with the Hot, Search, Details and Media functions stubbed out.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		author := "Anonymous"
		if usr, err := user.Current(); err == nil {
			author = usr.Username
		}

		s := struct {
			Name      string
			URL       string
			Author    string
			HotFn     string
			SearchFn  string
			DetailsFn string
			MediaFn   string
		}{
			Name:      lo.Must(cmd.Flags().GetString("name")),
			URL:       lo.Must(cmd.Flags().GetString("url")),
			Author:    author,
			HotFn:     constant.HotFn,
			SearchFn:  constant.SearchFn,
			DetailsFn: constant.DetailsFn,
			MediaFn:   constant.MediaFn,
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl, err := template.New("provider").Funcs(funcMap).Parse(constant.ProviderTemplate)
		handleErr(err)

		target := filepath.Join(where.Providers(), util.SanitizeFilename(s.Name)+luaExtension)
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		handleErr(tmpl.Execute(f, s))

		cmd.Println(target)
	},
}
