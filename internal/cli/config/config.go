package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/yousiffaraj287/file-stats/pkg/filestats"
)

const (
	// EnvPrefix is the prefix for environment variable overrides
	// (FILE_STATS_LOG_LEVEL, FILE_STATS_LOG_FORMAT, FILE_STATS_TIMEOUT).
	EnvPrefix = "FILE_STATS"
	// DefaultConfigName is the base name of the optional config file.
	DefaultConfigName = "file-stats"
)

// Load merges ambient configuration from all sources (defaults, optional
// config file, environment), validates it, and sets up the stderr logger.
// Returns the populated Options struct, the logger, or an error.
//
// None of these sources can change the JSON contract on stdout; they only
// control diagnostics and the scan timeout.
func Load(cfgFile string, verbose bool) (filestats.Options, *slog.Logger, error) {
	var opts filestats.Options

	// Temporary basic logger for early loading errors.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// The surrounding agent backend is dotenv-configured; honour a local .env
	// before Viper reads the environment. A missing .env is not an error.
	if err := godotenv.Load(); err == nil {
		tempLogger.Debug("Loaded environment from .env file")
	}

	v := viper.New()
	setDefaults(v)

	// --- Load Config File ---
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) && cfgFile == "" {
			// Config file not found is OK if not explicitly specified.
			tempLogger.Debug("No configuration file found, using defaults/env")
		} else {
			configFileUsed := cfgFile
			if configFileUsed == "" {
				configFileUsed = fmt.Sprintf("searched locations for %s.yaml", DefaultConfigName)
			}
			tempLogger.Error("Error reading configuration file", slog.String("path", configFileUsed), slog.Any("error", err))
			return opts, tempLogger, fmt.Errorf("error reading config file '%s': %w", configFileUsed, err)
		}
	} else {
		opts.ConfigFilePath = v.ConfigFileUsed()
		tempLogger.Debug("Using configuration file", slog.String("path", opts.ConfigFilePath))
	}

	// --- Bind Environment Variables (highest priority) ---
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// --- Populate Options ---
	opts.LogLevel = v.GetString("log-level")
	opts.LogFormat = v.GetString("log-format")
	opts.ScanTimeout = v.GetDuration("timeout")
	opts.Verbose = verbose
	opts.Out = os.Stdout

	// --- Validate ---
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, opts.LogLevel) {
		err := fmt.Errorf("invalid log-level '%s' (expected debug, info, warn, or error)", opts.LogLevel)
		tempLogger.Error(err.Error())
		return opts, tempLogger, err
	}
	if !slices.Contains([]string{"text", "json", "auto"}, opts.LogFormat) {
		err := fmt.Errorf("invalid log-format '%s' (expected text, json, or auto)", opts.LogFormat)
		tempLogger.Error(err.Error())
		return opts, tempLogger, err
	}
	if opts.ScanTimeout < 0 {
		err := fmt.Errorf("invalid timeout '%s' (must not be negative)", opts.ScanTimeout)
		tempLogger.Error(err.Error())
		return opts, tempLogger, err
	}

	// --- Set up Logger ---
	// Diagnostics go to stderr only; stdout carries nothing but the single
	// JSON object.
	handler := newLogHandler(os.Stderr, opts)
	opts.Logger = handler
	logger := slog.New(handler)
	logger.Debug("Configuration loaded",
		slog.String("logLevel", opts.LogLevel),
		slog.String("logFormat", opts.LogFormat),
		slog.Duration("timeout", opts.ScanTimeout),
		slog.String("configFile", opts.ConfigFilePath),
	)
	return opts, logger, nil
}

// setDefaults registers defaults for all ambient keys.
func setDefaults(v *viper.Viper) { // minimal comment
	v.SetDefault("log-level", filestats.DefaultLogLevel)
	v.SetDefault("log-format", filestats.DefaultLogFormat)
	v.SetDefault("timeout", filestats.DefaultScanTimeout)
}

// newLogHandler builds the slog handler for the validated options. Format
// "auto" resolves to text when the destination is a terminal, json otherwise.
func newLogHandler(dest *os.File, opts filestats.Options) slog.Handler {
	level := parseLevel(opts.LogLevel)
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	format := opts.LogFormat
	if format == "auto" {
		if term.IsTerminal(int(dest.Fd())) {
			format = "text"
		} else {
			format = "json"
		}
	}
	if format == "json" {
		return slog.NewJSONHandler(dest, handlerOpts)
	}
	return slog.NewTextHandler(dest, handlerOpts)
}

// parseLevel maps a validated level string to its slog.Level.
func parseLevel(level string) slog.Level { // minimal comment
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
