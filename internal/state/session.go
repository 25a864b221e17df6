package state

// Session is a single entry of a host session snapshot.
type Session struct {
	Name     string
	Current  bool
	Attached bool
	Windows  int
}

// SessionStore tracks the name of the host's current session.
type SessionStore interface {
	Observe([]Session) bool
	Current() (string, bool)
	Entries() []Session
}

type sessionStore struct {
	entries []Session
	current string
	known   bool
}

// NewSessionStore returns a store that has not seen a current session yet.
func NewSessionStore() SessionStore {
	return &sessionStore{}
}

// Observe records the session flagged as current. A snapshot without a
// current entry leaves the previous name in place. The return value reports
// whether the current name changed.
func (s *sessionStore) Observe(sessions []Session) bool {
	s.entries = cloneSessions(sessions)
	for _, entry := range sessions {
		if !entry.Current {
			continue
		}
		changed := !s.known || s.current != entry.Name
		s.current = entry.Name
		s.known = true
		return changed
	}
	return false
}

func (s *sessionStore) Current() (string, bool) {
	return s.current, s.known
}

func (s *sessionStore) Entries() []Session {
	return cloneSessions(s.entries)
}

func cloneSessions(entries []Session) []Session {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Session, len(entries))
	copy(dup, entries)
	return dup
}
