package tmux

import (
	"os/exec"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

type Session struct {
	Name     string
	Attached bool
	Clients  []string
	Current  bool
	Windows  int
}

type SessionSnapshot struct {
	Sessions []Session
	Current  string
}

type sessionHandle interface {
	Rename(string) error
	Kill() error
}

var (
	dialTmux = func(socketPath string) (tmuxClient, error) {
		if socketPath != "" {
			return gotmux.NewTmux(socketPath)
		}
		return gotmux.DefaultTmux()
	}

	newTmux = cachedTmux

	runExecCommand = func(name string, args ...string) commander {
		return realCommander{cmd: exec.Command(name, args...)}
	}

	newSessionHandle = func(s *gotmux.Session) sessionHandle {
		if s == nil {
			return nil
		}
		return &realSessionHandle{session: s}
	}
)

type tmuxClient interface {
	ListSessions() ([]*gotmux.Session, error)
	ListClients() ([]*gotmux.Client, error)
	SwitchClient(*gotmux.SwitchClientOptions) error
	GetSessionByName(string) (*gotmux.Session, error)
	DisplayMessage(target, format string) (string, error)
	Command(parts ...string) (string, error)
	Close() error
}

type commander interface {
	Run() error
	Output() ([]byte, error)
}

type realCommander struct {
	cmd *exec.Cmd
}

func (r realCommander) Run() error {
	return r.cmd.Run()
}

func (r realCommander) Output() ([]byte, error) {
	return r.cmd.Output()
}

type realSessionHandle struct {
	session *gotmux.Session
}

func (h *realSessionHandle) Rename(name string) error {
	return h.session.Rename(name)
}

func (h *realSessionHandle) Kill() error {
	return h.session.Kill()
}
