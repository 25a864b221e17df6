package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLauncherRendering(t *testing.T) {
	bin := buildBinary(t)
	socket, cleanup, logDir := StartTmuxServer(t)
	defer cleanup()
	t.Cleanup(func() {
		AssertNoServerCrash(t, logDir)
	})

	root := t.TempDir()
	list := "# layouts\nlayouts/dev.tmux\nlayouts/ops.tmux\n"
	if err := os.WriteFile(filepath.Join(root, ".tmux-workspace"), []byte(list), 0o644); err != nil {
		t.Fatalf("failed to write layout list: %v", err)
	}

	session := "launcher"
	pane := session + ":0.0"
	scriptDir := t.TempDir()
	exitFile := filepath.Join(scriptDir, "exit-code")
	scriptPath := filepath.Join(scriptDir, "run.sh")
	script := "#!/bin/sh\n" +
		"\"$WORKSPACE_BIN\" -socket \"$WORKSPACE_SOCKET\" -root \"$WORKSPACE_ROOT\" -width 80 -height 24 > /dev/null 2>&1\n" +
		"printf '%s' $? > \"$WORKSPACE_EXIT\"\n" +
		"sleep 300\n"
	if err := os.WriteFile(scriptPath, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write launcher script: %v", err)
	}
	// The session shell does not inherit the client's environment, so the
	// values are handed to tmux with -e.
	cmd := tmuxCommand(socket, "new-session", "-d", "-x", "80", "-y", "24", "-s", session,
		"-e", "WORKSPACE_BIN="+bin,
		"-e", "WORKSPACE_SOCKET="+socket,
		"-e", "WORKSPACE_ROOT="+root,
		"-e", "WORKSPACE_EXIT="+exitFile,
		scriptPath)
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to launch binary: %v", err)
	}
	if err := tmuxCommand(socket, "has-session", "-t", session).Run(); err != nil {
		t.Skipf("skipping: unable to create tmux session: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	waitForRender(t, ctx, socket, pane, exitFile)
	output, err := CapturePane(t, socket, pane)
	if err != nil {
		t.Fatalf("capture-pane failed: %v", err)
	}
	if strings.TrimSpace(output) == "" {
		t.Skip("tmux capture returned empty output; skipping content assertions")
	}
	assertContains(t, output, "Fuzzy find command", "Available layouts", "layouts/dev.tmux", "Close Plugin")
	_ = tmuxCommand(socket, "send-keys", "-t", pane, "Escape").Run()
	_ = tmuxCommand(socket, "kill-session", "-t", session).Run()
}
