package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/atomicstack/tmux-workspace/internal/app"
	"github.com/atomicstack/tmux-workspace/internal/launcher"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSocketPath  = "TMUX_WORKSPACE_SOCKET"
	envRoot        = "TMUX_WORKSPACE_ROOT"
	envWidth       = "TMUX_WORKSPACE_WIDTH"
	envHeight      = "TMUX_WORKSPACE_HEIGHT"
	envReplace     = "TMUX_WORKSPACE_REPLACE_CURRENT_SESSION"
	envDebug       = "TMUX_WORKSPACE_DEBUG"
	envOptionsFile = "TMUX_WORKSPACE_OPTIONS_FILE"
	envPoll        = "TMUX_WORKSPACE_POLL"
	envTrace       = "TMUX_WORKSPACE_TRACE"
	envLogFile     = "TMUX_WORKSPACE_LOG_FILE"

	// OptionsFileName is looked up in the workspace root when no options
	// file is given.
	OptionsFileName = ".tmux-workspace.toml"

	defaultPoll = 1500 * time.Millisecond

	usageHeader = `usage: tmux-workspace [flags]

Pick a layout listed in <root>/.tmux-workspace and open it in tmux, either
as new windows in the current session or, with -replace-current-session,
as a fresh session that takes the current one's place.

flags:
`
)

// HelpError carries the usage text when -h or -help is given.
type HelpError struct {
	Usage string
}

func (e *HelpError) Error() string { return "help requested" }

func (e *HelpError) Unwrap() error { return flag.ErrHelp }

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fset := flag.NewFlagSet("tmux-workspace", flag.ContinueOnError)
	var usage strings.Builder
	fset.SetOutput(&usage)
	fset.Usage = func() {
		usage.WriteString(usageHeader)
		fset.PrintDefaults()
	}

	socket := fset.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)")
	root := fset.String("root", envOrDefault(env, envRoot, ""), "workspace root holding the layout list (defaults to the current directory)")
	width := fset.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fset.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	replace := fset.Bool("replace-current-session", envOrBool(env, envReplace, false), "replace the current session instead of appending tabs")
	debug := fset.Bool("debug", envOrBool(env, envDebug, false), "show the debug block")
	optionsFile := fset.String("options-file", envOrDefault(env, envOptionsFile, ""), "TOML file with launcher options")
	poll := fset.Duration("poll", envOrDuration(env, envPoll, defaultPoll), "interval between session snapshots")
	trace := fset.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fset.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, &HelpError{Usage: usage.String()}
		}
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *poll <= 0 {
		return Config{}, fmt.Errorf("poll must be > 0 (got %s)", *poll)
	}

	rootDir := strings.TrimSpace(*root)
	if rootDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("resolve workspace root: %w", err)
		}
		rootDir = cwd
	}

	optionsPath := strings.TrimSpace(*optionsFile)
	explicitOptions := optionsPath != ""
	if !explicitOptions {
		optionsPath = filepath.Join(rootDir, OptionsFileName)
	}
	options, err := LoadOptions(optionsPath)
	if err != nil && (explicitOptions || !errors.Is(err, fs.ErrNotExist)) {
		return Config{}, err
	}

	set := map[string]bool{}
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if _, ok := env[envReplace]; ok || set["replace-current-session"] {
		options[launcher.OptionReplaceCurrentSession] = strconv.FormatBool(*replace)
	}
	if _, ok := env[envDebug]; ok || set["debug"] {
		options[launcher.OptionDebug] = strconv.FormatBool(*debug)
	}

	cfg := Config{
		App: app.Config{
			SocketPath:   *socket,
			Root:         rootDir,
			Width:        *width,
			Height:       *height,
			Options:      options,
			PollInterval: *poll,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"socket":                  *socket,
			"root":                    rootDir,
			"width":                   strconv.Itoa(*width),
			"height":                  strconv.Itoa(*height),
			"replace-current-session": strconv.FormatBool(*replace),
			"debug":                   strconv.FormatBool(*debug),
			"options-file":            optionsPath,
			"poll":                    poll.String(),
			"trace":                   strconv.FormatBool(*trace),
			"logFile":                 *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// LoadOptions decodes a flat TOML table into launcher options. Non-string
// values are formatted so `debug = true` and `debug = "true"` are equal.
// The returned map is never nil, even on error.
func LoadOptions(path string) (map[string]string, error) {
	options := map[string]string{}
	var raw map[string]interface{}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return options, err
		}
		return options, fmt.Errorf("options file %s: %w", path, err)
	}
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			options[k] = val
		case map[string]interface{}, []interface{}, []map[string]interface{}:
			return map[string]string{}, fmt.Errorf("options file %s: %q must be a scalar", path, k)
		default:
			options[k] = fmt.Sprint(val)
		}
	}
	return options, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	var help *HelpError
	if errors.As(err, &help) {
		fmt.Fprint(os.Stdout, help.Usage)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	info, err := os.Stat(cfg.App.Root)
	if err != nil {
		return fmt.Errorf("workspace root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("workspace root %s is not a directory", cfg.App.Root)
	}
	return nil
}
