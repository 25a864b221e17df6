package dispatcher

import (
	"github.com/atomicstack/tmux-workspace/internal/backend"
	"github.com/atomicstack/tmux-workspace/internal/logging"
	"github.com/atomicstack/tmux-workspace/internal/state"
	"github.com/atomicstack/tmux-workspace/internal/tmux"
)

// SessionObserver receives session snapshots and reports whether the
// current session changed.
type SessionObserver interface {
	ObserveSessions([]state.Session) bool
}

type Result struct {
	SessionsUpdated bool
	CurrentChanged  bool
	Err             error
}

type Dispatcher struct {
	sessions SessionObserver
}

func New(s SessionObserver) *Dispatcher {
	return &Dispatcher{sessions: s}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		logging.Error(evt.Err)
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindSessions:
		if snapshot, ok := evt.Data.(tmux.SessionSnapshot); ok {
			res.CurrentChanged = d.sessions.ObserveSessions(SessionsFromTmux(snapshot.Sessions))
			res.SessionsUpdated = true
		}
	}
	return res
}

// SessionsFromTmux converts tmux session records into tracker entries.
func SessionsFromTmux(sessions []tmux.Session) []state.Session {
	out := make([]state.Session, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, state.Session{
			Name:     s.Name,
			Current:  s.Current,
			Attached: s.Attached,
			Windows:  s.Windows,
		})
	}
	return out
}
