package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/itsmostafa/ares/internal/logger"
	"github.com/itsmostafa/ares/internal/runner"
)

// Config is the session configuration assembled from the environment.
type Config struct {
	// Runner configures the compiler and the scratch workspace.
	Runner runner.Config
	// HistoryFile persists line-editor history when set.
	HistoryFile string
	// LogLevel is the logger threshold.
	LogLevel logger.Level
	// LogFile redirects log output when set.
	LogFile string
}

// Load loads configuration from environment and defaults
func Load() (*Config, error) {
	rc := runner.DefaultConfig()

	if compiler := getenvFirst("ARES_RUSTC", "RUSTC"); compiler != "" {
		rc.Compiler = compiler
	}
	if args := os.Getenv("ARES_RUSTC_ARGS"); args != "" {
		rc.CompilerArgs = strings.Fields(args)
	}
	if raw := os.Getenv("ARES_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid ARES_TIMEOUT %q: %w", raw, err)
		}
		if timeout < 0 {
			return nil, fmt.Errorf("invalid ARES_TIMEOUT %q: must not be negative", raw)
		}
		rc.Timeout = timeout
	}

	level, err := logger.ParseLevel(os.Getenv("ARES_LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("invalid ARES_LOG_LEVEL: %w", err)
	}

	return &Config{
		Runner:      rc,
		HistoryFile: os.Getenv("ARES_HISTORY_FILE"),
		LogLevel:    level,
		LogFile:     os.Getenv("ARES_LOG_FILE"),
	}, nil
}

func getenvFirst(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
