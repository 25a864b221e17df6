package tmux

import (
	"errors"
	"fmt"
	"os"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"

	"github.com/atomicstack/tmux-workspace/internal/logging"
)

// Host drives a tmux server on behalf of the launcher. Layouts are tmux
// command scripts that are sourced with the target session as context.
type Host struct {
	socketPath string
	clientID   string
	scriptDir  string
}

// NewHost returns a Host bound to socketPath. clientID names the visible
// client to switch; empty falls back to the control-mode client's default.
func NewHost(socketPath, clientID string) *Host {
	return &Host{socketPath: socketPath, clientID: clientID}
}

// SessionName maps a launcher session name onto one tmux accepts. tmux
// rejects ':' and '.' in session names.
func SessionName(name string) string {
	return strings.NewReplacer(":", "_", ".", "_").Replace(name)
}

// NewTabsWithLayout sources layout into the current session.
func (h *Host) NewTabsWithLayout(layout string) error {
	client, err := newTmux(h.socketPath)
	if err != nil {
		return err
	}
	current := currentSessionName(client)
	if current == "" {
		return errors.New("no current session")
	}
	return h.sourceLayout(client, current, layout)
}

func (h *Host) RenameSession(from, to string) error {
	return RenameSession(h.socketPath, SessionName(from), SessionName(to))
}

// SwitchSessionWithLayout switches to name, creating it from layout in cwd
// when it does not exist yet. An empty name creates a session named by tmux.
func (h *Host) SwitchSessionWithLayout(name, layout, cwd string) error {
	client, err := newTmux(h.socketPath)
	if err != nil {
		return err
	}
	target := SessionName(strings.TrimSpace(name))
	if target == "" || !sessionExists(client, target) {
		args := []string{"new-session", "-d", "-P", "-F", "#{session_name}"}
		if target != "" {
			args = append(args, "-s", target)
		}
		if cwd != "" {
			args = append(args, "-c", cwd)
		}
		created, err := client.Command(args...)
		if err != nil {
			return fmt.Errorf("new-session: %w", err)
		}
		if created = strings.TrimSpace(created); created != "" {
			target = created
		}
		if target == "" {
			return errors.New("new-session returned no session name")
		}
		// The client is moved even when sourcing fails so it never stays on
		// a session that is about to be killed.
		if err := h.sourceLayout(client, target, layout); err != nil {
			return errors.Join(err, h.switchClient(client, target))
		}
	}
	return h.switchClient(client, target)
}

func (h *Host) KillSessions(names ...string) error {
	targets := make([]string, 0, len(names))
	for _, name := range names {
		targets = append(targets, SessionName(name))
	}
	return KillSessions(h.socketPath, targets)
}

// DeleteDeadSession confirms name no longer exists. tmux keeps no record of
// killed sessions so there is nothing else to discard.
func (h *Host) DeleteDeadSession(name string) error {
	client, err := newTmux(h.socketPath)
	if err != nil {
		return err
	}
	target := SessionName(name)
	if sessionExists(client, target) {
		return fmt.Errorf("session %s is still running", target)
	}
	return nil
}

func (h *Host) switchClient(client tmuxClient, target string) error {
	if h.clientID != "" {
		_, err := client.Command("switch-client", "-c", h.clientID, "-t", exactSession(target))
		return err
	}
	return client.SwitchClient(&gotmux.SwitchClientOptions{TargetSession: exactSession(target)})
}

// sourceLayout runs layout as a tmux script against session. source-file
// only grew a target flag after 3.3, so the control-mode client is moved
// onto session first and the script resolves its targets from there. The
// control client is left on session afterwards.
func (h *Host) sourceLayout(client tmuxClient, session, layout string) error {
	if strings.TrimSpace(layout) == "" {
		return nil
	}
	self, err := client.Command("display-message", "-p", "#{client_name}")
	if err != nil {
		return fmt.Errorf("resolve control client: %w", err)
	}
	self = strings.TrimSpace(self)
	if self == "" {
		return errors.New("control client has no name")
	}

	f, err := os.CreateTemp(h.scriptDir, "tmux-workspace-*.tmux")
	if err != nil {
		return fmt.Errorf("create layout script: %w", err)
	}
	path := f.Name()
	defer func() {
		if err := os.Remove(path); err != nil {
			logging.Errorf("remove layout script %s: %v", path, err)
		}
	}()
	if _, err := f.WriteString(layout); err != nil {
		f.Close()
		return fmt.Errorf("write layout script: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write layout script: %w", err)
	}

	if _, err := client.Command("switch-client", "-c", self, "-t", exactSession(session)); err != nil {
		return fmt.Errorf("focus %s: %w", session, err)
	}
	if _, err := client.Command("source-file", path); err != nil {
		return fmt.Errorf("source-file: %w", err)
	}
	return nil
}
