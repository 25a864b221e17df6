package ui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tmux-workspace/internal/backend"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil && !m.quitting {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent feeds session snapshots to the launcher. Session updates
// never trigger a redraw on their own unless the debug block shows them.
func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		m.backendLastErr = res.Err.Error()
		return
	}
	m.backendLastErr = ""
	if res.CurrentChanged && m.launcher.Debug() {
		m.invalidate()
	}
}
