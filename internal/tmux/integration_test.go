package tmux

import (
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	testutil "github.com/atomicstack/tmux-workspace/internal/testutil"
)

func TestFetchSessionsIntegration(t *testing.T) {
	testutil.RequireTmux(t)
	socket, cleanup, logDir := testutil.StartTmuxServer(t)
	defer cleanup()
	t.Cleanup(func() {
		testutil.AssertNoServerCrash(t, logDir)
	})
	t.Setenv("TMUX_TMPDIR", filepath.Dir(socket))
	Shutdown()
	t.Cleanup(Shutdown)

	sessionName := "tmux-integration"
	testutil.NewSession(t, socket, sessionName, t.TempDir())
	waitForSession(t, socket, sessionName)

	snap, err := FetchSessions(socket)
	if err != nil {
		t.Fatalf("FetchSessions failed: %v", err)
	}
	for _, sess := range snap.Sessions {
		t.Logf("snapshot session: name=%q windows=%d attached=%v current=%v", sess.Name, sess.Windows, sess.Attached, sess.Current)
	}
	if !containsSession(snap.Sessions, sessionName) {
		t.Fatalf("expected session %q in snapshot %#v", sessionName, snap.Sessions)
	}
}

func TestHostSourceLayoutIntegration(t *testing.T) {
	testutil.RequireTmux(t)
	socket, cleanup, logDir := testutil.StartTmuxServer(t)
	defer cleanup()
	t.Cleanup(func() {
		testutil.AssertNoServerCrash(t, logDir)
	})
	Shutdown()
	t.Cleanup(Shutdown)

	testutil.NewSession(t, socket, "work", t.TempDir())
	waitForSession(t, socket, "work")

	client, err := newTmux(socket)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	host := NewHost(socket, "")
	host.scriptDir = t.TempDir()
	if err := host.sourceLayout(client, "work", "new-window -n editor\n"); err != nil {
		t.Fatalf("sourceLayout failed: %v", err)
	}
	windows := testutil.Windows(t, socket, "work")
	if len(windows) == 0 || windows[len(windows)-1] != "editor" {
		t.Fatalf("expected editor window in work, got %v", windows)
	}
	for _, name := range testutil.Windows(t, socket, "tmux-workspace-test") {
		if name == "editor" {
			t.Fatalf("layout leaked into another session: %v", testutil.Windows(t, socket, "tmux-workspace-test"))
		}
	}
}

func TestHostReplaceSequenceIntegration(t *testing.T) {
	testutil.RequireTmux(t)
	socket, cleanup, logDir := testutil.StartTmuxServer(t)
	defer cleanup()
	t.Cleanup(func() {
		testutil.AssertNoServerCrash(t, logDir)
	})
	t.Setenv("TMUX_PANE", "")
	Shutdown()
	t.Cleanup(Shutdown)

	current := "work"
	testutil.NewSession(t, socket, current, t.TempDir())
	waitForSession(t, socket, current)

	host := NewHost(socket, "")
	if err := host.RenameSession(current, "zellij_wp_delete_me"); err != nil {
		t.Fatalf("RenameSession failed: %v", err)
	}
	dir := t.TempDir()
	layout := "new-window -n editor\nnew-window -n shell\n"
	if err := host.SwitchSessionWithLayout("zwp:"+current, layout, dir); err != nil {
		t.Fatalf("SwitchSessionWithLayout failed: %v", err)
	}
	waitForSession(t, socket, "zwp_work")
	windows := testutil.Windows(t, socket, "zwp_work")
	if len(windows) < 3 || windows[len(windows)-2] != "editor" || windows[len(windows)-1] != "shell" {
		t.Fatalf("expected layout windows in new session, got %v", windows)
	}

	if err := host.KillSessions("zellij_wp_delete_me"); err != nil {
		t.Fatalf("KillSessions failed: %v", err)
	}
	if err := host.DeleteDeadSession("zellij_wp_delete_me"); err != nil {
		t.Fatalf("DeleteDeadSession failed: %v", err)
	}
	for _, name := range testutil.Sessions(t, socket) {
		if name == "zellij_wp_delete_me" || name == current {
			t.Fatalf("expected %q to be gone, sessions: %v", name, testutil.Sessions(t, socket))
		}
	}
}

func waitForSession(t *testing.T, socket, session string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if err := exec.Command("tmux", "-S", socket, "has-session", "-t", session).Run(); err == nil {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("session %q did not appear in time", session)
}

func containsSession(sessions []Session, name string) bool {
	for _, s := range sessions {
		if s.Name == name {
			return true
		}
	}
	return false
}
