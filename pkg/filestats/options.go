package filestats

import (
	"io"
	"log/slog"
	"time"
)

// Options holds all configuration for a single analysis run, merged from
// defaults, the optional config file, and FILE_STATS_* environment variables.
// The analysis surface itself stays a single positional filename; everything
// here is ambient and never alters the JSON contract on stdout.
type Options struct {
	// --- Target ---
	Path string `mapstructure:"-"` // The single positional argument.

	// --- Ambient configuration ---
	ConfigFilePath string        `mapstructure:"-"`          // Path to the loaded config file (for logging).
	LogLevel       string        `mapstructure:"log-level"`  // "debug", "info", "warn", "error".
	LogFormat      string        `mapstructure:"log-format"` // "text", "json", "auto".
	Verbose        bool          `mapstructure:"-"`          // Forces debug level (set by --verbose).
	ScanTimeout    time.Duration `mapstructure:"timeout"`    // Bound on one run; 0 disables.

	// --- Injected Dependencies & Internal State ---
	Out      io.Writer    `mapstructure:"-"` // Destination for the JSON object (stdout in production).
	Logger   slog.Handler `mapstructure:"-"` // Logging backend (stderr in production).
	Analyzer Analyzer     `mapstructure:"-"` // Optional: analysis implementation (testing).
}
