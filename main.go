package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/atomicstack/tmux-workspace/internal/app"
	"github.com/atomicstack/tmux-workspace/internal/config"
	"github.com/atomicstack/tmux-workspace/internal/launcher"
	"github.com/atomicstack/tmux-workspace/internal/logging"
	"github.com/atomicstack/tmux-workspace/internal/logging/events"
	"github.com/atomicstack/tmux-workspace/internal/workspace"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "tmux-workspace: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(runtimeCfg))
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Errorf("run: %v", err)
		fmt.Fprintf(os.Stderr, "tmux-workspace: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records how the launcher was started: the resolved
// flags, the workspace it will read layouts from and the tmux context it
// inherited from the popup.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	mode := "append"
	if cfg.App.Options[launcher.OptionReplaceCurrentSession] == "true" {
		mode = "replace"
	}
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"options": cfg.App.Options,
		"config":  cfg,
		"workspace": map[string]interface{}{
			"root":       cfg.App.Root,
			"layoutList": filepath.Join(cfg.App.Root, workspace.ListFileName),
			"mode":       mode,
		},
		"tmux": map[string]interface{}{
			"inside": os.Getenv("TMUX") != "",
			"pane":   os.Getenv("TMUX_PANE"),
		},
		"tty": collectTTYDetails(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
