package launcher

import (
	"fmt"
	"path/filepath"

	"github.com/atomicstack/tmux-workspace/internal/logging"
	"github.com/atomicstack/tmux-workspace/internal/logging/events"
)

const (
	// SentinelSession is the temporary name given to the session being
	// replaced.
	SentinelSession = "zellij_wp_delete_me"
	// SessionPrefix marks sessions created by the launcher.
	SessionPrefix = "zwp:"
)

// Stage is a step of the layout switch protocol.
type Stage int

const (
	StageIdle Stage = iota
	StageResolving
	StageAppendTabs
	StageRenaming
	StageSwitching
	StageCleanup
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageResolving:
		return "resolving"
	case StageAppendTabs:
		return "append-tabs"
	case StageRenaming:
		return "renaming"
	case StageSwitching:
		return "switching"
	case StageCleanup:
		return "cleanup"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// switchLayout runs the protocol for the current match and returns the
// terminal stage. Idle means there was nothing to apply.
func (l *Launcher) switchLayout() Stage {
	candidate, ok := l.Match()
	if !ok {
		return StageIdle
	}
	stage := StageIdle
	advance := func(next Stage) {
		events.Layout.Stage(stage.String(), next.String())
		stage = next
	}

	advance(StageResolving)
	path := filepath.Join(l.root, candidate)
	events.Layout.Resolve(candidate, path)
	content, err := l.readLayout(l.root, candidate)
	if err != nil {
		events.Layout.ReadError(path, err)
		l.lastError = err.Error()
		advance(StageFailed)
		return stage
	}

	if !l.replace {
		advance(StageAppendTabs)
		events.Layout.AppendTabs(len(content))
		l.hostCall("append tabs", l.host.NewTabsWithLayout(content))
		advance(StageDone)
		return stage
	}

	current, known := l.sessions.Current()
	if !known {
		advance(StageSwitching)
		events.Session.Switch("", l.workingDir)
		l.hostCall("switch session", l.host.SwitchSessionWithLayout("", content, l.workingDir))
		advance(StageDone)
		return stage
	}

	advance(StageRenaming)
	events.Session.Rename(current, SentinelSession)
	l.hostCall("rename session", l.host.RenameSession(current, SentinelSession))

	advance(StageSwitching)
	target := SessionPrefix + current
	events.Session.Switch(target, l.workingDir)
	l.hostCall("switch session", l.host.SwitchSessionWithLayout(target, content, l.workingDir))

	advance(StageCleanup)
	events.Session.Kill([]string{SentinelSession})
	l.hostCall("kill session", l.host.KillSessions(SentinelSession))
	events.Session.DeleteDead(SentinelSession)
	l.hostCall("delete dead session", l.host.DeleteDeadSession(SentinelSession))

	advance(StageDone)
	return stage
}

func (l *Launcher) hostCall(op string, err error) {
	if err == nil {
		events.Action.Success(op)
		return
	}
	err = fmt.Errorf("%s: %w", op, err)
	events.Action.Error(err)
	logging.Error(err)
}
