package version

import (
	"fmt"

	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/color"
	"github.com/streamflix-cli/streamflix/constant"
	"github.com/streamflix-cli/streamflix/icon"
	"github.com/streamflix-cli/streamflix/key"
	"github.com/streamflix-cli/streamflix/style"
	"github.com/streamflix-cli/streamflix/util"
)

// Newer returns the latest version when it is ahead of the running one.
// Nothing is returned when checks are disabled or the lookup fails.
func Newer() mo.Option[string] {
	if !viper.GetBool(key.CliVersionCheck) {
		return mo.None[string]()
	}

	latest, err := Latest()
	if err != nil {
		return mo.None[string]()
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return mo.None[string]()
	}

	return mo.Some(latest)
}

// Notice is a one-line update hint for status bars.
func Notice() mo.Option[string] {
	latest, ok := Newer().Get()
	if !ok {
		return mo.None[string]()
	}
	return mo.Some(fmt.Sprintf("%s %s is available (you're on %s)", icon.Get(icon.Info), latest, constant.Version))
}

// Notify prints an update banner when a newer version exists.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, ok := Newer().Get()
	erase()
	if !ok {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(fmt.Sprintf("https://github.com/%s/releases/tag/v%s", constant.Repository, latest)),
	)
}
