package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/tmux-workspace/internal/format/table"
	"github.com/atomicstack/tmux-workspace/internal/logging"
)

const (
	promptMarker      = " > "
	cursorMarker      = "┃"
	placeholderText   = "Fuzzy find command"
	selectedLayout    = "Selected layout"
	availableHeader   = " Available layouts: "
	overflowMarker    = "..."
	closeHint         = "Close Plugin"
	reservedRows      = 4
	headerRowsCounted = 9
)

// View implements tea.Model.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.WindowTitle = paneTitle
	v.SetContent(m.frame())
	return v
}

// frame returns the cached frame, rebuilding it when stale.
func (m *Model) frame() string {
	if m.stale || m.rendered == "" {
		m.rendered = m.renderFrame()
		m.stale = false
	}
	return m.rendered
}

func (m *Model) renderFrame() string {
	lines := make([]string, 0, 16)
	lines = append(lines, m.errorLine())
	lines = append(lines, m.promptLine())
	lines = append(lines, m.matchLines()...)
	lines = append(lines, render(styles.Header, availableHeader))
	lines = append(lines, m.layoutLines()...)
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  <%s> <%s> %s",
		render(styles.Key, "Esc"), render(styles.Key, "Ctrl+c"), render(styles.Footer, closeHint)))
	if m.launcher.Debug() {
		lines = append(lines, m.debugLines()...)
	}
	if m.width > 0 {
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, m.width, "")
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) errorLine() string {
	if msg := m.launcher.LastError(); msg != "" {
		return "Error: " + render(styles.Error, msg)
	}
	return ""
}

func (m *Model) promptLine() string {
	prompt := render(styles.Prompt, promptMarker)
	cursor := render(styles.Cursor, cursorMarker)
	if m.launcher.QueryLen() == 0 {
		return prompt + " " + cursor + render(styles.Placeholder, placeholderText)
	}
	before, after := m.launcher.QuerySplit()
	out := prompt + " " + render(styles.Query, before) + cursor
	if after != "" {
		out += render(styles.Query, after)
	}
	return out
}

func (m *Model) matchLines() []string {
	if match, ok := m.launcher.Match(); ok {
		return []string{"", " $ " + render(styles.Match, match), ""}
	}
	return []string{"", "-> " + render(styles.Selected, selectedLayout), ""}
}

// layoutLines lists the filtered candidates, replacing the tail with an
// overflow marker once the pane runs out of rows.
func (m *Model) layoutLines() []string {
	filtered := m.launcher.Filtered()
	out := make([]string, 0, len(filtered))
	count := headerRowsCounted
	for _, candidate := range filtered {
		if m.height > 0 && count >= m.height-reservedRows {
			out = append(out, " - "+render(styles.Overflow, overflowMarker))
			break
		}
		out = append(out, " - "+render(styles.Item, candidate))
		count++
	}
	return out
}

func (m *Model) debugLines() []string {
	text, cursor := m.launcher.Query()
	session, ok := m.launcher.CurrentSession()
	if !ok {
		session = "None"
	}
	lines := []string{
		render(styles.Debug, "input: "+text),
		render(styles.Debug, fmt.Sprintf("Cursor: %d", cursor)),
		render(styles.Debug, fmt.Sprintf("len: %d", m.launcher.QueryLen())),
		render(styles.Debug, "session: "+session),
		render(styles.Debug, "root: "+m.launcher.Root()),
		render(styles.Debug, "cwd: "+m.launcher.WorkingDir()),
		render(styles.Debug, fmt.Sprintf("layouts: %d", len(m.launcher.Candidates()))),
		render(styles.Debug, "log: "+logging.Path()),
	}
	lines = append(lines, m.sessionTable()...)
	if m.backendLastErr != "" {
		lines = append(lines, render(styles.Error, "backend: "+m.backendLastErr))
	}
	opts := m.launcher.Options()
	label := render(styles.DebugLabel, "Runtime configuration:")
	if len(opts) == 0 {
		return append(lines, label+" {}")
	}
	lines = append(lines, label+" {")
	for _, kv := range opts {
		lines = append(lines, render(styles.Debug, fmt.Sprintf("    %q: %q,", kv[0], kv[1])))
	}
	return append(lines, "}")
}

// sessionTable lists the last session snapshot, one aligned row per session.
func (m *Model) sessionTable() []string {
	sessions := m.launcher.Sessions()
	if len(sessions) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		marker := " "
		if s.Current {
			marker = "*"
		}
		attached := ""
		if s.Attached {
			attached = "attached"
		}
		rows = append(rows, []string{marker, s.Name, fmt.Sprintf("%d windows", s.Windows), attached})
	}
	out := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight})
	for i, line := range out {
		out[i] = render(styles.Debug, "  "+line)
	}
	return out
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
