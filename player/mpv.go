package player

import (
	"crypto/rand"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/streamflix-cli/streamflix/log"
	"github.com/streamflix-cli/streamflix/where"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
)

// MPV drives mpv through its JSON-IPC socket.
type MPV struct {
	args       []string
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}
	mu         sync.Mutex
}

// NewMPV creates an idle mpv backend. Nothing is spawned until Play.
func NewMPV(args []string) *MPV {
	exited := make(chan struct{})
	close(exited)
	return &MPV{args: args, exited: exited}
}

func (m *MPV) Name() string {
	return MPVName
}

// Play loads the link into a running mpv, or spawns a new one.
func (m *MPV) Play(link, title string) error {
	target, err := sanitizeMediaTarget(link)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if m.IsRunning() {
		if _, err := m.sendCommand([]any{"loadfile", target, "replace"}); err != nil {
			return fmt.Errorf("load into running mpv: %w", err)
		}
		return m.Set("force-media-title", sanitizeTitle(title))
	}

	if m.socketPath == "" {
		suffix := make([]byte, 4)
		if _, err := rand.Read(suffix); err != nil {
			return fmt.Errorf("generate socket name: %w", err)
		}
		m.socketPath = filepath.Join(where.Temp(), fmt.Sprintf("mpv-%x.sock", suffix))
	}

	m.cmd = exec.Command("mpv", m.arguments(target, title)...)
	m.cmd.SysProcAttr = sysProcAttr()

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	m.exited = make(chan struct{})
	go func(cmd *exec.Cmd, exited chan struct{}) {
		_ = cmd.Wait()
		close(exited)
	}(m.cmd, m.exited)

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warn("killing mpv: socket never became ready")
			_ = killProcess(m.cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	log.Infof("mpv started on %s", m.socketPath)
	return nil
}

// arguments leaves video output and decoding options to the user's mpv.conf.
func (m *MPV) arguments(target, title string) []string {
	safeTitle := sanitizeTitle(title)
	args := []string{
		"--no-terminal",
		"--really-quiet",
		"--input-ipc-server=" + m.socketPath,
		"--force-media-title=" + safeTitle,
		"--title=" + safeTitle,
		"--force-window=yes",
	}
	args = append(args, m.args...)
	return append(args, target)
}

func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		if conn, err := net.Dial("unix", m.socketPath); err == nil {
			_ = conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// IsRunning reports whether the spawned mpv process is alive.
func (m *MPV) IsRunning() bool {
	select {
	case <-m.exited:
		return false
	default:
		return m.socketPath != ""
	}
}

// TogglePause flips the pause property.
func (m *MPV) TogglePause() error {
	_, err := m.sendCommand([]any{"cycle", "pause"})
	return err
}

// Set writes an mpv property.
func (m *MPV) Set(property string, value any) error {
	_, err := m.sendCommand([]any{"set_property", property, value})
	return err
}

// Close asks mpv to quit and kills it if it does not exit in time.
func (m *MPV) Close() error {
	if !m.IsRunning() {
		return nil
	}

	_, _ = m.sendCommand([]any{"quit"})

	select {
	case <-m.exited:
	case <-time.After(3 * time.Second):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)
	m.socketPath = ""
	return nil
}

// sanitizeMediaTarget rejects links that mpv could read as flags or non-network schemes.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	u, err := url.Parse(l)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l, nil
	default:
		return "", fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
