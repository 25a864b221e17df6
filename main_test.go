package main

import (
	"testing"
	"time"

	"github.com/atomicstack/tmux-workspace/internal/app"
	"github.com/atomicstack/tmux-workspace/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadDescribesWorkspace(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			SocketPath:   "socket-path",
			Root:         "/srv/project",
			Width:        80,
			Height:       24,
			Options:      map[string]string{"debug": "true"},
			PollInterval: time.Second,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"socket": "socket-path",
			"root":   "/srv/project",
			"width":  "80",
			"height": "24",
			"debug":  "true",
		},
		Args: []string{"--socket", "socket-path"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["socket"] != "socket-path" {
		t.Fatalf("expected socket flag %q, got %v", "socket-path", flagsValue["socket"])
	}
	if flagsValue["root"] != "/srv/project" {
		t.Fatalf("expected root flag, got %v", flagsValue["root"])
	}
	if flagsValue["width"] != "80" || flagsValue["height"] != "24" {
		t.Fatalf("expected 80x24, got %vx%v", flagsValue["width"], flagsValue["height"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	options, ok := payload["options"].(map[string]string)
	if !ok || options["debug"] != "true" {
		t.Fatalf("expected options in payload, got %#v", payload["options"])
	}

	ws, ok := payload["workspace"].(map[string]interface{})
	if !ok || ws["layoutList"] != "/srv/project/.tmux-workspace" || ws["mode"] != "append" {
		t.Fatalf("unexpected workspace payload %#v", payload["workspace"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	cfgValue, ok := payload["config"].(config.Config)
	if !ok {
		t.Fatalf("expected config in payload")
	}
	if cfgValue.App.SocketPath != cfg.App.SocketPath || cfgValue.App.Root != cfg.App.Root || cfgValue.App.PollInterval != cfg.App.PollInterval {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
