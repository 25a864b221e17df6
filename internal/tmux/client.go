package tmux

import (
	"os"
	"strings"
	"sync"
)

var (
	clientMu     sync.Mutex
	cachedClient tmuxClient
	cachedSocket string
)

// cachedTmux reuses one control-mode connection per socket. Opening a new
// connection for every poll would attach and detach a client each time.
func cachedTmux(socketPath string) (tmuxClient, error) {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient != nil && cachedSocket == socketPath {
		return cachedClient, nil
	}
	if cachedClient != nil {
		_ = cachedClient.Close()
		cachedClient = nil
		cachedSocket = ""
	}
	client, err := dialTmux(socketPath)
	if err != nil {
		return nil, err
	}
	cachedClient = client
	cachedSocket = socketPath
	return client, nil
}

// Shutdown closes the cached control-mode connection, if any.
func Shutdown() {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient != nil {
		_ = cachedClient.Close()
	}
	cachedClient = nil
	cachedSocket = ""
}

// CurrentClientID attempts to detect the client that launched the popup so
// switch-client can target the visible tmux client instead of the
// control-mode connection.
func CurrentClientID(socketPath string) string {
	client, err := newTmux(socketPath)
	if err != nil {
		return ""
	}
	target := strings.TrimSpace(os.Getenv("TMUX_PANE"))
	name, err := client.DisplayMessage(target, "#{client_name}")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(name)
}
