package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/tmux-workspace/internal/backend"
	"github.com/atomicstack/tmux-workspace/internal/launcher"
	"github.com/atomicstack/tmux-workspace/internal/logging"
	"github.com/atomicstack/tmux-workspace/internal/tmux"
)

type recordingHost struct {
	calls []string
}

func (h *recordingHost) NewTabsWithLayout(layout string) error {
	h.calls = append(h.calls, "new-tabs:"+layout)
	return nil
}

func (h *recordingHost) RenameSession(from, to string) error {
	h.calls = append(h.calls, "rename:"+from+"->"+to)
	return nil
}

func (h *recordingHost) SwitchSessionWithLayout(name, layout, cwd string) error {
	h.calls = append(h.calls, "switch:"+name)
	return nil
}

func (h *recordingHost) KillSessions(names ...string) error {
	h.calls = append(h.calls, "kill:"+strings.Join(names, ","))
	return nil
}

func (h *recordingHost) DeleteDeadSession(name string) error {
	h.calls = append(h.calls, "delete-dead:"+name)
	return nil
}

func newTestHarness(t *testing.T, cfg launcher.Config, height int) (*Harness, *recordingHost) {
	t.Helper()
	host := &recordingHost{}
	model := NewModel(launcher.New(cfg, host), nil, 80, height)
	return NewHarness(model), host
}

func plain(h *Harness) string {
	return ansi.Strip(h.View())
}

func TestInitialViewShowsPlaceholderAndLayouts(t *testing.T) {
	h, _ := newTestHarness(t, launcher.Config{Candidates: []string{"layouts/a.tmux", "layouts/b.tmux"}}, 0)
	view := plain(h)
	for _, want := range []string{
		" >  ┃Fuzzy find command",
		"-> Selected layout",
		" Available layouts: ",
		" - layouts/a.tmux",
		" - layouts/b.tmux",
		"  <Esc> <Ctrl+c> Close Plugin",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if strings.HasPrefix(view, "Error:") {
		t.Fatalf("expected blank error line, got:\n%s", view)
	}
	if strings.Contains(view, "Runtime configuration") {
		t.Fatal("debug block must be hidden by default")
	}
}

func TestTypingUpdatesPromptMatchAndFilter(t *testing.T) {
	h, _ := newTestHarness(t, launcher.Config{Candidates: []string{"layouts/dev.tmux", "layouts/ops.tmux"}}, 0)
	h.Type("dev")
	view := plain(h)
	if !strings.Contains(view, " >  dev┃") {
		t.Fatalf("expected query with trailing cursor, got:\n%s", view)
	}
	if !strings.Contains(view, " $ layouts/dev.tmux") {
		t.Fatalf("expected best match line, got:\n%s", view)
	}
	if strings.Contains(view, " - layouts/ops.tmux") {
		t.Fatalf("expected ops to be filtered out, got:\n%s", view)
	}

	h.Press(tea.KeyLeft)
	if view := plain(h); !strings.Contains(view, " >  de┃v") {
		t.Fatalf("expected cursor inside query, got:\n%s", view)
	}
	h.Press(tea.KeyBackspace)
	if view := plain(h); !strings.Contains(view, " >  d┃v") {
		t.Fatalf("expected deletion before cursor, got:\n%s", view)
	}
}

func TestLayoutListOverflowsToMarker(t *testing.T) {
	candidates := []string{"l1", "l2", "l3", "l4", "l5", "l6"}
	h, _ := newTestHarness(t, launcher.Config{Candidates: candidates}, 15)
	view := plain(h)
	if !strings.Contains(view, " - l2") || strings.Contains(view, " - l3") {
		t.Fatalf("expected two rows before the overflow marker, got:\n%s", view)
	}
	if !strings.Contains(view, " - ...") {
		t.Fatalf("expected overflow marker, got:\n%s", view)
	}
}

func TestEscapeAndCtrlCQuit(t *testing.T) {
	h, host := newTestHarness(t, launcher.Config{}, 0)
	h.Press(tea.KeyEscape)
	if !h.Quit() {
		t.Fatal("expected esc to quit")
	}
	if len(host.calls) != 0 {
		t.Fatalf("expected no host calls, got %v", host.calls)
	}

	h, _ = newTestHarness(t, launcher.Config{}, 0)
	h.Send(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if !h.Quit() {
		t.Fatal("expected ctrl+c to quit")
	}
}

func TestUnboundKeyDoesNotRedraw(t *testing.T) {
	h, _ := newTestHarness(t, launcher.Config{Candidates: []string{"a"}}, 0)
	before := h.View()
	h.Model().launcher.Handle(launcher.Insert('a'))
	h.Send(tea.KeyPressMsg{Code: tea.KeyF5})
	if h.View() != before {
		t.Fatal("expected cached frame to be kept for unbound keys")
	}
	h.Type("b")
	if h.View() == before {
		t.Fatal("expected redraw after an edit")
	}
}

func TestEnterAppliesLayoutAndQuits(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "dev.tmux"), []byte("new-window"), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}
	h, host := newTestHarness(t, launcher.Config{Candidates: []string{"dev.tmux"}, Root: root}, 0)
	h.Type("dev")
	h.Press(tea.KeyEnter)
	if !h.Quit() {
		t.Fatal("expected program to quit after applying the layout")
	}
	if len(host.calls) != 1 || host.calls[0] != "new-tabs:new-window" {
		t.Fatalf("unexpected host calls %v", host.calls)
	}
}

func TestEnterWithReadErrorShowsError(t *testing.T) {
	h, host := newTestHarness(t, launcher.Config{Candidates: []string{"missing.tmux"}, Root: t.TempDir()}, 0)
	h.Type("missing")
	h.Press(tea.KeyEnter)
	if h.Quit() {
		t.Fatal("expected launcher to stay open on read error")
	}
	if view := plain(h); !strings.HasPrefix(view, "Error: ") || !strings.Contains(view, "missing.tmux") {
		t.Fatalf("expected error line, got:\n%s", view)
	}
	if len(host.calls) != 0 {
		t.Fatalf("expected no host calls, got %v", host.calls)
	}
}

func TestDebugBlockAndSessionEvents(t *testing.T) {
	h, _ := newTestHarness(t, launcher.Config{
		Candidates: []string{"x.tmux", "y.tmux"},
		Root:       "/srv/ws",
		WorkingDir: "/srv/ws/app",
		Options:    map[string]string{"debug": "true"},
	}, 0)
	h.Type("ab")
	view := plain(h)
	for _, want := range []string{
		"input: ab", "Cursor: 2", "len: 2", "session: None",
		"root: /srv/ws", "cwd: /srv/ws/app", "layouts: 2", "log: " + logging.Path(),
		"Runtime configuration: {", `    "debug": "true",`,
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in debug view:\n%s", want, view)
		}
	}

	h.Send(backendEventMsg{event: backend.Event{
		Kind: backend.KindSessions,
		Data: tmux.SessionSnapshot{Sessions: []tmux.Session{{Name: "work", Current: true}}, Current: "work"},
	}})
	view = plain(h)
	if !strings.Contains(view, "session: work") {
		t.Fatalf("expected tracked session in debug view:\n%s", view)
	}
	if !strings.Contains(view, "  *  work  0 windows") {
		t.Fatalf("expected session table in debug view:\n%s", view)
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	host := &recordingHost{}
	m := NewModel(launcher.New(launcher.Config{}, host), nil, 0, 20)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 100 || m.height != 20 {
		t.Fatalf("expected width to follow resize and height to stay fixed, got %dx%d", m.width, m.height)
	}
}
