// Package workspace reads the layout list and layout files from the
// workspace root.
package workspace

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/tmux-workspace/internal/logging/events"
)

// ListFileName is the layout list expected at the workspace root.
const ListFileName = ".tmux-workspace"

// Parse returns the candidate lines of a layout list. Blank lines and lines
// whose first non-space character is '#' are skipped; the rest are kept
// verbatim in file order.
func Parse(r io.Reader) []string {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// LoadCandidates reads the layout list under root. A missing or unreadable
// file yields whatever was read so far; the error is traced, not returned.
func LoadCandidates(root string) []string {
	path := filepath.Join(root, ListFileName)
	f, err := os.Open(path)
	if err != nil {
		events.Layout.ListUnavailable(path, err)
		return nil
	}
	defer f.Close()
	candidates := Parse(f)
	events.Layout.ListLoaded(path, len(candidates))
	return candidates
}

// ReadLayout returns the content of the layout file rel under root.
func ReadLayout(root, rel string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
