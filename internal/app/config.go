package app

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rook-computer/mipmapgen/internal/system"
)

const (
	EnvResRoot  = "MIPMAPGEN_RES_ROOT"
	EnvDebug    = "MIPMAPGEN_DEBUG"
	EnvStdioLog = "MIPMAPGEN_STDIO_LOG"
)

// Config holds the settings shared by both binaries. Flags override the
// environment defaults.
type Config struct {
	ResRoot  string
	Debug    bool
	StdioLog string
}

func DefaultConfigFromEnv(defaultResRoot string) (Config, error) {
	resRoot := os.Getenv(EnvResRoot)
	if resRoot == "" {
		resRoot = defaultResRoot
	}

	debug := false
	if raw := os.Getenv(EnvDebug); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDebug, raw, err)
		}
		debug = parsed
	}

	return Config{ResRoot: resRoot, Debug: debug, StdioLog: os.Getenv(EnvStdioLog)}, nil
}

// Setup applies the stdio redirect and opens the debug log. Problems are
// reported on stderr and never stop generation. The returned func releases
// the log file.
func Setup(cfg Config, stderr io.Writer) (Logger, func()) {
	if cfg.StdioLog != "" {
		if err := system.RedirectStdIO(cfg.StdioLog); err != nil {
			fmt.Fprintln(stderr, "stdio log redirect error:", err)
		}
	}

	var logger Logger = NoopLogger{}
	release := func() {}
	if cfg.Debug {
		fileLogger, closer, err := OpenFileLogger(DebugLogPath)
		if err != nil {
			fmt.Fprintln(stderr, "debug log open error:", err)
		} else {
			logger = fileLogger
			release = func() { _ = closer.Close() }
			logger.Infof("main", "debug logging enabled")
		}
	}
	return logger, release
}
