package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/streamflix-cli/streamflix/auth"
	"github.com/streamflix-cli/streamflix/color"
	"github.com/streamflix-cli/streamflix/icon"
	"github.com/streamflix-cli/streamflix/style"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

// authCmd manages the content API key stored in the system keyring.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the content API key",
	Long: `Store, inspect and remove the API key sent with content requests.
The api.key config value takes precedence over the keyring.`,
}

func init() {
	authCmd.AddCommand(authSetCmd)
}

var authSetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Store the API key in the system keyring",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var apiKey string
		if len(args) == 1 {
			apiKey = args[0]
		} else {
			handleErr(survey.AskOne(&survey.Password{Message: "API key"}, &apiKey, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.SetKey(apiKey))
		fmt.Printf("%s API key saved to the keyring\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authShowCmd)
	authShowCmd.Flags().BoolP("reveal", "r", false, "Print the key without masking")
}

var authShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the API key in use and where it comes from",
	Run: func(cmd *cobra.Command, args []string) {
		apiKey, origin := auth.ResolveWithOrigin()

		value, ok := apiKey.Get()
		if !ok {
			fmt.Println(style.Fg(color.Yellow)("No API key set. Requests are sent without one."))
			return
		}

		if !lo.Must(cmd.Flags().GetBool("reveal")) {
			value = auth.Mask(value)
		}

		fmt.Printf("%s %s\n", value, style.Faint("("+string(origin)+")"))
	},
}

func init() {
	authCmd.AddCommand(authRemoveCmd)
	authRemoveCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var authRemoveCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"delete"},
	Short:   "Remove the API key from the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("yes")) {
			var confirm bool
			handleErr(survey.AskOne(&survey.Confirm{Message: "Remove the stored API key?"}, &confirm))
			if !confirm {
				return
			}
		}

		err := auth.DeleteKey()
		if errors.Is(err, auth.ErrNoKey) {
			fmt.Println(style.Fg(color.Yellow)("No API key stored"))
			return
		}
		handleErr(err)

		fmt.Printf("%s API key removed\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
