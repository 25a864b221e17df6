package ui

import (
	"reflect"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tmux-workspace/internal/backend"
	"github.com/atomicstack/tmux-workspace/internal/data/dispatcher"
	"github.com/atomicstack/tmux-workspace/internal/launcher"
	"github.com/atomicstack/tmux-workspace/internal/theme"
)

// paneTitle names the popup window, mirroring the host pane rename.
const paneTitle = "WorkspaceManager"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the workspace launcher.
type Model struct {
	launcher    *launcher.Launcher
	keys        keyMap
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	backend        *backend.Watcher
	backendLastErr string
	dispatcher     *dispatcher.Dispatcher

	stale    bool
	rendered string
	quitting bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the launcher and optional watcher into a Bubble Tea model.
// Positive width and height pin the layout regardless of resize events.
func NewModel(l *launcher.Launcher, watcher *backend.Watcher, width, height int) *Model {
	m := &Model{
		launcher:   l,
		keys:       defaultKeyMap(),
		backend:    watcher,
		dispatcher: dispatcher.New(l),
		stale:      true,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyPressMsg{}):   m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.stale = true
	return nil
}

// invalidate marks the cached frame as out of date.
func (m *Model) invalidate() {
	m.stale = true
}
