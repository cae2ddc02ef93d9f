package cmd

import (
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/streamflix-cli/streamflix/auth"
	"github.com/streamflix-cli/streamflix/color"
	"github.com/streamflix-cli/streamflix/config"
	"github.com/streamflix-cli/streamflix/constant"
	"github.com/streamflix-cli/streamflix/key"
	"github.com/streamflix-cli/streamflix/style"
	"github.com/streamflix-cli/streamflix/where"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envName maps a config key onto its environment variable.
func envName(k string) string {
	if k == where.EnvConfigPath {
		return k
	}
	return strings.ToUpper(constant.App + "_" + config.EnvKeyReplacer.Replace(k))
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long:  `Display the collection of supported environment variables and their current process values.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		exposed := append(slices.Clone(config.EnvExposed), where.EnvConfigPath)
		slices.Sort(exposed)

		for _, k := range exposed {
			env := envName(k)
			value := os.Getenv(env)
			present := value != ""

			if (!present && setOnly) || (present && unsetOnly) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			switch {
			case !present:
				cmd.Println(style.Fg(color.Red)("unset"))
			case k == key.APIKey:
				cmd.Println(style.Fg(color.Green)(auth.Mask(value)))
			default:
				cmd.Println(style.Fg(color.Green)(value))
			}
		}
	},
}
