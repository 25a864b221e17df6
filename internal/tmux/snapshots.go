package tmux

import (
	"os"
	"strconv"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// FetchSessions lists the sessions on the server and marks the one the
// launching client is attached to.
func FetchSessions(socketPath string) (SessionSnapshot, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return SessionSnapshot{}, err
	}

	sessions, err := client.ListSessions()
	if err != nil {
		return SessionSnapshot{}, err
	}
	if len(sessions) == 0 {
		fallback, err := fetchSessionsFallback(socketPath)
		if err == nil {
			sessions = fallback
		}
	}
	currentName := currentSessionName(client)
	realClients := realAttachedClients(client)
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s == nil {
			continue
		}
		clients := realClients[s.Name]
		out = append(out, Session{
			Name:     s.Name,
			Attached: len(clients) > 0,
			Clients:  clients,
			Current:  currentName != "" && s.Name == currentName,
			Windows:  s.Windows,
		})
	}
	return SessionSnapshot{Sessions: out, Current: currentName}, nil
}

// fetchSessionsFallback shells out to tmux when the control-mode
// ListSessions call returns nothing, which happens during a race at startup.
func fetchSessionsFallback(socketPath string) ([]*gotmux.Session, error) {
	format := "#{session_name}\t#{session_windows}\t#{session_attached}"
	args := execArgs(socketPath, "list-sessions", "-F", format)
	output, err := runExecCommand("tmux", args...).Output()
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(string(output))
	if text == "" {
		return []*gotmux.Session{}, nil
	}
	lines := strings.Split(text, "\n")
	sessions := make([]*gotmux.Session, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 3 {
			continue
		}
		windows, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
		attached, _ := strconv.Atoi(strings.TrimSpace(parts[2]))
		sessions = append(sessions, &gotmux.Session{
			Name:     strings.TrimSpace(parts[0]),
			Windows:  windows,
			Attached: attached,
		})
	}
	return sessions, nil
}

// realAttachedClients maps session names to the non-control-mode clients
// attached to them. Our own control-mode connection is excluded.
func realAttachedClients(client tmuxClient) map[string][]string {
	clients, err := client.ListClients()
	if err != nil {
		return nil
	}
	result := make(map[string][]string)
	for _, c := range clients {
		if c == nil || c.ControlMode || c.Session == "" {
			continue
		}
		result[c.Session] = append(result[c.Session], c.Name)
	}
	return result
}

func currentSessionName(client tmuxClient) string {
	if pane := strings.TrimSpace(os.Getenv("TMUX_PANE")); pane != "" {
		if name, err := client.DisplayMessage(pane, "#{session_name}"); err == nil {
			if name = strings.TrimSpace(name); name != "" {
				return name
			}
		}
	}
	if clients, err := client.ListClients(); err == nil {
		for _, c := range clients {
			if c != nil && !c.ControlMode && c.Session != "" {
				return c.Session
			}
		}
	}
	return ""
}
