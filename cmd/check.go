package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/icon"
	"github.com/streamflix-cli/streamflix/key"
	"github.com/streamflix-cli/streamflix/player"
	"github.com/streamflix-cli/streamflix/style"
)

// checkPlayer warns when autoplay is on but the configured player binary is missing.
// Browsing still works; resolved links are then left for a manual start.
func checkPlayer() {
	if !viper.GetBool(key.PlayerAutoplay) {
		return
	}

	name := viper.GetString(key.Player)
	if name == player.SystemName {
		return
	}
	if name == "" {
		name = player.MPVName
	}

	if _, err := exec.LookPath(name); err != nil {
		fmt.Println(missingPlayerBox(name))
	}
}

func installHint(name string) string {
	switch runtime.GOOS {
	case "darwin":
		return "brew install " + name
	case "linux":
		return "sudo apt install " + name
	case "windows":
		return "scoop install " + name
	default:
		return ""
	}
}

func missingPlayerBox(name string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.WarningColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.WarningColor).Render(fmt.Sprintf("%s Player not found", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("'%s' was not found in your PATH. Streams will wait for a manual start.", name))

	suggestion := ""
	if hint := installHint(name); hint != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(hint))
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, title, "\n", body, suggestion))
}
