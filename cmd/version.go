package cmd

import (
	"os"
	"runtime"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/streamflix-cli/streamflix/constant"
	"github.com/streamflix-cli/streamflix/style"
	"github.com/streamflix-cli/streamflix/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

// versionCmd displays the application version and platform.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and platform information",
	Long:  "Display the current application version, Go runtime and platform, then check for a newer release.",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify()

		versionInfo := struct {
			Version string
			OS      string
			Arch    string
			Go      string
			App     string
		}{
			Version: constant.Version,
			App:     constant.App,
			OS:      runtime.GOOS,
			Arch:    runtime.GOARCH,
			Go:      runtime.Version(),
		}

		t, err := template.New("version").Funcs(map[string]any{
			"faint": style.Faint,
			"bold":  style.Bold,
			"brand": style.Fg(style.Brand),
		}).Parse(`{{ brand "▇▇▇" }} {{ brand .App }}

  {{ faint "Version" }}         {{ bold .Version }}
  {{ faint "Go" }}              {{ bold .Go }}
  {{ faint "Platform" }}        {{ bold .OS }}/{{ bold .Arch }}
`)
		handleErr(err)
		handleErr(t.Execute(cmd.OutOrStdout(), versionInfo))
	},
}
