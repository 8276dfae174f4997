package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/calebmor/varmenu/internal/app"
	"github.com/calebmor/varmenu/internal/token"
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
	envCatalog        = "VARMENU_CATALOG"
	envIncludeParents = "VARMENU_INCLUDE_PARENTS"
	envTokenOpen      = "VARMENU_TOKEN_OPEN"
	envTokenClose     = "VARMENU_TOKEN_CLOSE"
	envText           = "VARMENU_TEXT"
	envWidth          = "VARMENU_WIDTH"
	envHeight         = "VARMENU_HEIGHT"
	envShowFooter     = "VARMENU_FOOTER"
	envVerbose        = "VARMENU_VERBOSE"
	envCommitFocus    = "VARMENU_COMMIT_FOCUS_BUFFER"
	envTrace          = "VARMENU_TRACE"
	envLogFile        = "VARMENU_LOG_FILE"
	envWatchInterval  = "VARMENU_WATCH_INTERVAL"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("varmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	catalogPath := fs.String("catalog", envOrDefault(env, envCatalog, ""), "path to the catalog YAML file (required)")
	includeParents := fs.Bool("include-parents", envOrBool(env, envIncludeParents, false), "emit internal catalog nodes as selectable items")
	tokenOpen := fs.String("token-open", envOrDefault(env, envTokenOpen, token.DefaultOpen), "opening token delimiter")
	tokenClose := fs.String("token-close", envOrDefault(env, envTokenClose, token.DefaultClose), "closing token delimiter")
	text := fs.String("text", envOrDefault(env, envText, ""), "initial buffer contents")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for insertions")
	commitFocus := fs.Bool("commit-focus-buffer", envOrBool(env, envCommitFocus, false), "move focus to the buffer instead of the trigger after an insertion")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	watchInterval := fs.Duration("watch-interval", envOrDuration(env, envWatchInterval, 1500*time.Millisecond), "catalog file poll interval (0 disables watching)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *watchInterval < 0 {
		return Config{}, fmt.Errorf("watch-interval must be >= 0 (got %s)", *watchInterval)
	}

	cfg := Config{
		App: app.Config{
			CatalogPath:       *catalogPath,
			IncludeParents:    *includeParents,
			TokenOpen:         *tokenOpen,
			TokenClose:        *tokenClose,
			InitialText:       *text,
			Width:             *width,
			Height:            *height,
			ShowFooter:        *footer,
			Verbose:           *verbose,
			CommitFocusBuffer: *commitFocus,
			WatchInterval:     *watchInterval,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"catalog":           *catalogPath,
			"includeParents":    strconv.FormatBool(*includeParents),
			"tokenOpen":         *tokenOpen,
			"tokenClose":        *tokenClose,
			"width":             strconv.Itoa(*width),
			"height":            strconv.Itoa(*height),
			"footer":            strconv.FormatBool(*footer),
			"verbose":           strconv.FormatBool(*verbose),
			"commitFocusBuffer": strconv.FormatBool(*commitFocus),
			"trace":             strconv.FormatBool(*trace),
			"logFile":           *logFile,
			"watchInterval":     watchInterval.String(),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
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
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.CatalogPath) == "" {
		return fmt.Errorf("a catalog file is required (use -catalog or %s)", envCatalog)
	}
	return nil
}
