package tmux

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

func RenameSession(socketPath, target, newName string) error {
	client, err := newTmux(socketPath)
	if err != nil {
		return err
	}
	trimmedTarget := strings.TrimSpace(target)
	if trimmedTarget == "" {
		return fmt.Errorf("session target required")
	}
	session, err := findSession(client, trimmedTarget)
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("session %s not found", trimmedTarget)
	}
	return session.Rename(newName)
}

func KillSessions(socketPath string, targets []string) error {
	if len(targets) == 0 {
		return nil
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return err
	}
	for _, target := range targets {
		trimmed := strings.TrimSpace(target)
		if trimmed == "" {
			continue
		}
		session, err := findSession(client, trimmed)
		if err != nil {
			return err
		}
		if session == nil {
			return fmt.Errorf("session %s not found", trimmed)
		}
		if err := session.Kill(); err != nil {
			return err
		}
	}
	return nil
}

func sessionExists(client tmuxClient, name string) bool {
	_, err := client.Command("has-session", "-t", exactSession(name))
	return err == nil
}

// exactSession prefixes name with '=' so tmux does not fall back to prefix
// or pattern matching when resolving the target.
func exactSession(name string) string {
	return "=" + name
}

func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("TMUX_WORKSPACE_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

// findSession resolves a session by its exact name.
func findSession(client tmuxClient, name string) (sessionHandle, error) {
	session, err := client.GetSessionByName(name)
	if err != nil {
		return nil, err
	}
	return newSessionHandle(session), nil
}
