package events

import "github.com/atomicstack/tmux-workspace/internal/logging"

type LayoutTracer struct{}

var Layout = LayoutTracer{}

func (LayoutTracer) ListLoaded(path string, count int) {
	logging.Trace("layout.list.loaded", map[string]interface{}{"path": path, "count": count})
}

func (LayoutTracer) ListUnavailable(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("layout.list.unavailable", payload)
}

func (LayoutTracer) Resolve(candidate, path string) {
	logging.Trace("layout.resolve", map[string]interface{}{"candidate": candidate, "path": path})
}

func (LayoutTracer) ReadError(path string, err error) {
	logging.Trace("layout.read.error", map[string]interface{}{"path": path, "error": err.Error()})
}

func (LayoutTracer) AppendTabs(size int) {
	logging.Trace("layout.append", map[string]interface{}{"bytes": size})
}

func (LayoutTracer) Stage(from, to string) {
	logging.Trace("layout.stage", map[string]interface{}{"from": from, "to": to})
}
