// Package launcher holds the layout launcher state and reacts to decoded
// key presses by editing the query, re-matching and driving the host.
package launcher

import (
	"sort"

	"github.com/atomicstack/tmux-workspace/internal/logging/events"
	"github.com/atomicstack/tmux-workspace/internal/match"
	"github.com/atomicstack/tmux-workspace/internal/query"
	"github.com/atomicstack/tmux-workspace/internal/state"
	"github.com/atomicstack/tmux-workspace/internal/workspace"
)

const (
	OptionReplaceCurrentSession = "replace_current_session"
	OptionDebug                 = "debug"
)

// Config carries everything the launcher needs at construction time.
type Config struct {
	Candidates []string
	Root       string
	WorkingDir string
	Options    map[string]string
	// ReadLayout overrides how layout files are read. Nil means
	// workspace.ReadLayout.
	ReadLayout func(root, rel string) (string, error)
}

type Launcher struct {
	candidates []string
	root       string
	workingDir string
	options    map[string]string
	replace    bool
	debug      bool
	readLayout func(root, rel string) (string, error)

	buffer    *query.Buffer
	match     string
	matched   bool
	sessions  state.SessionStore
	lastError string
	lastStage Stage

	host Host
}

// New builds a launcher for cfg driving host.
func New(cfg Config, host Host) *Launcher {
	options := make(map[string]string, len(cfg.Options))
	for k, v := range cfg.Options {
		options[k] = v
	}
	readLayout := cfg.ReadLayout
	if readLayout == nil {
		readLayout = workspace.ReadLayout
	}
	workingDir := cfg.WorkingDir
	if workingDir == "" {
		workingDir = cfg.Root
	}
	return &Launcher{
		candidates: append([]string(nil), cfg.Candidates...),
		root:       cfg.Root,
		workingDir: workingDir,
		options:    options,
		replace:    options[OptionReplaceCurrentSession] == "true",
		debug:      options[OptionDebug] == "true",
		readLayout: readLayout,
		buffer:     query.New(),
		sessions:   state.NewSessionStore(),
		host:       host,
	}
}

// Handle applies a single action and reports what the caller should do next.
func (l *Launcher) Handle(action Action) Outcome {
	switch action.Kind {
	case ActionInsert:
		if l.buffer.Insert(action.Char) {
			events.Query.Insert(l.buffer.String(), l.buffer.Cursor())
			l.rematch()
		}
		return Outcome{Render: true}
	case ActionDeleteBackward:
		if l.buffer.DeleteBeforeCursor() {
			events.Query.Delete(l.buffer.String(), l.buffer.Cursor())
			l.rematch()
		}
		return Outcome{Render: true}
	case ActionMoveLeft:
		if l.buffer.MoveLeft() {
			events.Query.Cursor(l.buffer.Cursor())
		}
		return Outcome{Render: true}
	case ActionMoveRight:
		if l.buffer.MoveRight() {
			events.Query.Cursor(l.buffer.Cursor())
		}
		return Outcome{Render: true}
	case ActionClose:
		return Outcome{Close: true}
	case ActionConfirm:
		l.lastStage = l.switchLayout()
		if l.lastStage == StageDone {
			return Outcome{Hide: true}
		}
		return Outcome{Render: true}
	default:
		return Outcome{}
	}
}

func (l *Launcher) rematch() {
	l.match, l.matched = match.Best(l.buffer.String(), l.candidates)
	events.Match.Update(l.buffer.String(), l.match, l.matched)
}

// ObserveSessions records a host session snapshot and reports whether the
// tracked current session changed.
func (l *Launcher) ObserveSessions(sessions []state.Session) bool {
	changed := l.sessions.Observe(sessions)
	current, _ := l.sessions.Current()
	events.Session.Observe(len(sessions), current, changed)
	return changed
}

// Query returns the query text and cursor position.
func (l *Launcher) Query() (string, int) {
	return l.buffer.String(), l.buffer.Cursor()
}

// QuerySplit returns the query text either side of the cursor.
func (l *Launcher) QuerySplit() (string, string) {
	return l.buffer.Split()
}

// QueryLen returns the query length in runes.
func (l *Launcher) QueryLen() int {
	return l.buffer.Len()
}

// Match returns the current best candidate.
func (l *Launcher) Match() (string, bool) {
	if !l.matched {
		return "", false
	}
	return l.match, true
}

// Candidates returns a copy of the loaded layout list.
func (l *Launcher) Candidates() []string {
	return append([]string(nil), l.candidates...)
}

// Filtered returns the candidates that contain the query as a subsequence.
func (l *Launcher) Filtered() []string {
	return match.Filter(l.buffer.String(), l.candidates)
}

func (l *Launcher) LastError() string { return l.lastError }

func (l *Launcher) LastStage() Stage { return l.lastStage }

func (l *Launcher) Debug() bool { return l.debug }

func (l *Launcher) Replace() bool { return l.replace }

func (l *Launcher) Root() string { return l.root }

func (l *Launcher) WorkingDir() string { return l.workingDir }

// CurrentSession returns the last observed current session name.
func (l *Launcher) CurrentSession() (string, bool) {
	return l.sessions.Current()
}

// Sessions returns the entries of the last session snapshot.
func (l *Launcher) Sessions() []state.Session {
	return l.sessions.Entries()
}

// Options returns the raw options as sorted key/value pairs.
func (l *Launcher) Options() [][2]string {
	keys := make([]string, 0, len(l.options))
	for k := range l.options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{k, l.options[k]})
	}
	return out
}
