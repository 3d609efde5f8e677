package filestats

import "time"

// Constants defining the wire contract of the emitted JSON objects.
// The consuming orchestrator parses stdout and branches on the "status" field,
// so these values are part of the tool's public contract and must not change.
const (
	// ToolName is the constant "tool" field present in every emitted object.
	ToolName = "file_stats"
	// StatusSuccess marks the success-shaped object.
	StatusSuccess = "success"
	// StatusError marks the error-shaped object.
	StatusError = "error"
)

// Canonical user-facing error messages. The orchestrator matches on these
// strings today, so they are fixed.
const (
	// UsageMessage is emitted when the argument count is not exactly one.
	UsageMessage = "Usage: file_stats <filename>"
	// NotReadableMessage is emitted for any open-time failure. Sub-causes
	// (missing file, permissions, directory) are deliberately not distinguished.
	NotReadableMessage = "Unable to open file"
	// TimeoutMessage is emitted when the scan exceeds the configured bound.
	TimeoutMessage = "Tool execution timed out"
)

// MaxFilenameLen is the maximum number of bytes of the supplied path stored in
// a Result. Longer paths are truncated silently; truncation is never an error.
const MaxFilenameLen = 255

// Constants defining default values for the ambient configuration options.
// These are used when setting up Viper defaults in the configuration loading process.
const (
	// DefaultLogLevel is the default stderr logging level.
	DefaultLogLevel = "info"
	// DefaultLogFormat selects the slog handler ("text", "json", or "auto").
	// "auto" picks text when stderr is a terminal and json otherwise.
	DefaultLogFormat = "auto"
	// DefaultScanTimeout bounds a single analysis run. Zero disables the bound.
	DefaultScanTimeout = 10 * time.Second
)
