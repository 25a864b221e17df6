package tmux

import "strings"

// execArgs prefixes a tmux subcommand with the socket selection used by the
// exec fallbacks. An empty socket leaves tmux to its own default.
func execArgs(socketPath string, command ...string) []string {
	args := make([]string, 0, len(command)+2)
	if socket := strings.TrimSpace(socketPath); socket != "" {
		args = append(args, "-S", socket)
	}
	return append(args, command...)
}
