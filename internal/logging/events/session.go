package events

import "github.com/atomicstack/tmux-workspace/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Observe(count int, current string, changed bool) {
	logging.Trace("session.observe", map[string]interface{}{
		"count":   count,
		"current": current,
		"changed": changed,
	})
}

func (SessionTracer) Rename(target, name string) {
	logging.Trace("session.rename", map[string]interface{}{"target": target, "name": name})
}

func (SessionTracer) Switch(target, cwd string) {
	logging.Trace("session.switch", map[string]interface{}{"target": target, "cwd": cwd})
}

func (SessionTracer) Kill(targets []string) {
	logging.Trace("session.kill", map[string]interface{}{"targets": targets})
}

func (SessionTracer) DeleteDead(target string) {
	logging.Trace("session.delete-dead", map[string]interface{}{"target": target})
}
