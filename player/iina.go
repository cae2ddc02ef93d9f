package player

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/streamflix-cli/streamflix/constant"
)

// IINA hands links to the macOS IINA app through LaunchServices.
type IINA struct {
	args   []string
	cmd    *exec.Cmd
	exited chan struct{}
}

func NewIINA(args []string) *IINA {
	exited := make(chan struct{})
	close(exited)
	return &IINA{args: args, exited: exited}
}

func (p *IINA) Name() string {
	return IINAName
}

func (p *IINA) Play(link, title string) error {
	if runtime.GOOS != constant.Darwin {
		return fmt.Errorf("IINA is only supported on macOS")
	}

	target, err := sanitizeMediaTarget(link)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	args := []string{"-a", "IINA", target, "--args", "--mpv-force-media-title=" + sanitizeTitle(title)}
	args = append(args, p.args...)

	p.cmd = exec.Command("open", args...)
	if err := p.cmd.Start(); err != nil {
		return fmt.Errorf("LaunchServices failed to invoke IINA: %w", err)
	}

	p.exited = make(chan struct{})
	go func(cmd *exec.Cmd, exited chan struct{}) {
		_ = cmd.Wait()
		close(exited)
	}(p.cmd, p.exited)

	return nil
}

func (p *IINA) IsRunning() bool {
	select {
	case <-p.exited:
		return false
	default:
		return true
	}
}

func (p *IINA) Close() error {
	if p.IsRunning() {
		return killProcess(p.cmd)
	}
	return nil
}
