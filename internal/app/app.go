package app

import (
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tmux-workspace/internal/backend"
	"github.com/atomicstack/tmux-workspace/internal/launcher"
	"github.com/atomicstack/tmux-workspace/internal/tmux"
	"github.com/atomicstack/tmux-workspace/internal/ui"
	"github.com/atomicstack/tmux-workspace/internal/workspace"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath   string
	Root         string
	Width        int
	Height       int
	Options      map[string]string
	PollInterval time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	defer tmux.Shutdown()

	host := tmux.NewHost(socketPath, tmux.CurrentClientID(socketPath))
	l := launcher.New(launcher.Config{
		Candidates: workspace.LoadCandidates(cfg.Root),
		Root:       cfg.Root,
		WorkingDir: cfg.Root,
		Options:    cfg.Options,
	}, host)

	watcher := backend.NewWatcher(socketPath, cfg.PollInterval)
	defer watcher.Stop()
	model := ui.NewModel(l, watcher, cfg.Width, cfg.Height)
	program := tea.NewProgram(model)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
