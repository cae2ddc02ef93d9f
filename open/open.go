// Package open launches links with the system's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/streamflix-cli/streamflix/constant"
)

// Start opens input with the default handler without waiting for it to exit.
func Start(input string) error {
	cmd, err := Command(input)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Run opens input with the default handler and waits for the handler to exit.
func Run(input string) error {
	cmd, err := Command(input)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command builds the platform command that opens input.
func Command(input string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), nil
	case constant.Darwin:
		return exec.Command("open", input), nil
	case constant.Linux:
		return exec.Command("xdg-open", input), nil
	case constant.Android:
		return exec.Command("termux-open", input), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}
