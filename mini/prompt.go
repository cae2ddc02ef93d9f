package mini

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/color"
	"github.com/streamflix-cli/streamflix/icon"
	"github.com/streamflix-cli/streamflix/key"
	"github.com/streamflix-cli/streamflix/style"
	"github.com/streamflix-cli/streamflix/util"
)

// Menu entries that are not content.
const (
	backOption = "← Back"
	quitOption = "Quit"
)

func title(t string) {
	fmt.Println(style.Tag(style.Base, style.AccentColor)(t))
}

func fail(t string) {
	fmt.Println(style.Fg(color.Red)(icon.Get(icon.Fail) + " " + t))
}

func info(t string) {
	fmt.Println(style.Fg(color.Yellow)(t))
}

func progress(msg string) (eraser func()) {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), style.Faint(msg)))
}

func truncate(s string) string {
	if truncateAt > 8 && len([]rune(s)) > truncateAt-4 {
		return string([]rune(s)[:truncateAt-7]) + "..."
	}
	return s
}

// menu asks for one of options and returns its index.
func menu(message string, options []string) (int, error) {
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 15,
		VimMode:  viper.GetBool(key.MiniVimMode),
	}

	var index int
	if err := survey.AskOne(prompt, &index); err != nil {
		return 0, err
	}
	return index, nil
}

// input asks for a line of text. suggest may be nil.
func input(message string, suggest func(string) []string) (string, error) {
	prompt := &survey.Input{
		Message: message,
		Suggest: suggest,
	}

	var value string
	if err := survey.AskOne(prompt, &value); err != nil {
		return "", err
	}
	return value, nil
}
