package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/streamflix-cli/streamflix/filesystem"
	"github.com/streamflix-cli/streamflix/inline"
	"github.com/streamflix-cli/streamflix/provider"
	"github.com/streamflix-cli/streamflix/query"
	"github.com/streamflix-cli/streamflix/source"
	"github.com/streamflix-cli/streamflix/util"
	"github.com/streamflix-cli/streamflix/view"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.PersistentFlags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.PersistentFlags().StringP("output", "o", "", "Specify a file path to write the command output")
}

// inlineCmd executes single fetches in non-interactive, scriptable mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `Run a single fetch and print what the screen would show.

Plain output prints one tab separated line per card (id, detail path, title, rating),
the detail page fields, or the resolved stream link.`,
}

// runInline creates the configured source and runs command with the shared output flags.
func runInline(cmd *cobra.Command, options inline.Options) {
	src, err := provider.Default()
	handleErr(err)

	options.Source = src
	options.Json = lo.Must(cmd.Flags().GetBool("json"))

	var writer io.Writer = os.Stdout
	if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
		f, err := filesystem.API().Create(output)
		handleErr(err)
		defer util.Ignore(f.Close)
		writer = f
	}
	options.Out = writer

	handleErr(inline.Run(context.Background(), &options))
}

func init() {
	inlineCmd.AddCommand(inlineHotCmd)
}

var inlineHotCmd = &cobra.Command{
	Use:   "hot",
	Short: "List hot movies and trending series",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runInline(cmd, inline.Options{Command: inline.Hot})
	},
}

func init() {
	inlineCmd.AddCommand(inlineSearchCmd)
}

var inlineSearchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search titles by keyword",
	Args:  cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		runInline(cmd, inline.Options{Command: inline.Search, Query: strings.Join(args, " ")})
	},
}

func addIdentityFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("id", "i", "", "Subject id of the title")
	cmd.Flags().StringP("path", "p", "", "Detail path of the title")
	cmd.Flags().StringP("title", "t", "", "Display title")

	lo.Must0(cmd.MarkFlagRequired("id"))
	lo.Must0(cmd.MarkFlagRequired("path"))
}

func identityOptions(cmd *cobra.Command, command inline.Command) inline.Options {
	return inline.Options{
		Command: command,
		Identity: source.Identity{
			ID:         lo.Must(cmd.Flags().GetString("id")),
			DetailPath: lo.Must(cmd.Flags().GetString("path")),
		},
		Title: lo.Must(cmd.Flags().GetString("title")),
	}
}

func init() {
	inlineCmd.AddCommand(inlineDetailCmd)
	addIdentityFlags(inlineDetailCmd)
}

var inlineDetailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Show the detail page of a title",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runInline(cmd, identityOptions(cmd, inline.Detail))
	},
}

func init() {
	inlineCmd.AddCommand(inlineStreamCmd)
	addIdentityFlags(inlineStreamCmd)
}

var inlineStreamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Resolve the stream link of a title without playing it",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runInline(cmd, identityOptions(cmd, inline.Stream))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema of inline outputs.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured inline mode outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "output", "region", "state", "card", "identity":
				return pkgName(t) + "." + name
			}

			return name
		}
		reflector.Mapper = func(t reflect.Type) *jsonschema.Schema {
			if names, ok := enums[t]; ok {
				return &jsonschema.Schema{Type: "string", Enum: names}
			}
			return nil
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}

// enums are the integer types that encode themselves by name.
var enums = map[reflect.Type][]any{
	reflect.TypeFor[view.Screen]():       names(view.Home, view.SearchResults, view.DetailScreen),
	reflect.TypeFor[view.PlayerStatus](): names(view.Fetching, view.Ready, view.Manual, view.Unavailable),
	reflect.TypeFor[source.Kind](): names(
		source.Success, source.Empty, source.LinkMissing, source.APIError,
		source.NotFound, source.UnknownShape, source.TransportFailure,
	),
}

func names[T fmt.Stringer](values ...T) []any {
	return lo.Map(values, func(v T, _ int) any { return v.String() })
}

func pkgName(t reflect.Type) string {
	parts := strings.Split(t.PkgPath(), "/")
	return parts[len(parts)-1]
}
