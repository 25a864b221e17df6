package ui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tmux-workspace/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	press, ok := msg.(tea.KeyPressMsg)
	if !ok || m.quitting {
		return nil
	}
	for _, action := range m.keys.actionsFor(press) {
		out := m.launcher.Handle(action)
		if out.Render {
			m.invalidate()
		}
		switch {
		case out.Close:
			return m.quit("close")
		case out.Hide:
			return m.quit("layout applied")
		}
	}
	return nil
}

func (m *Model) quit(reason string) tea.Cmd {
	m.quitting = true
	events.App.Quit(reason)
	if m.backend != nil {
		m.backend.Stop()
	}
	return tea.Quit
}
