package launcher

// Host is the subset of the terminal multiplexer the launcher drives. Every
// call is fire-and-forget from the protocol's point of view: errors are
// logged and the protocol moves on.
type Host interface {
	// NewTabsWithLayout appends the tabs described by layout to the current
	// session.
	NewTabsWithLayout(layout string) error
	// RenameSession renames the session from to to.
	RenameSession(from, to string) error
	// SwitchSessionWithLayout focuses the session name, creating it with
	// layout rooted at cwd when needed. An empty name lets the host pick one.
	SwitchSessionWithLayout(name, layout, cwd string) error
	// KillSessions terminates the named sessions.
	KillSessions(names ...string) error
	// DeleteDeadSession discards a terminated session so it cannot be
	// resurrected.
	DeleteDeadSession(name string) error
}
