package filestats

import "errors"

// --- Exported Error Variables ---
// The error taxonomy has exactly two members. Both map to exit code 1 and an
// error-shaped JSON object; callers check against them using errors.Is.

var (
	// ErrNotReadable indicates the target file could not be opened for reading.
	// It covers every open-time failure uniformly (missing file, permission
	// denied, path is a directory, ...); sub-causes are not distinguished
	// because the consuming orchestrator only branches on the "status" field.
	ErrNotReadable = errors.New("unable to open file")

	// ErrUsage indicates the command line did not carry exactly one positional
	// argument. It is raised before any file access is attempted.
	ErrUsage = errors.New("wrong argument count")
)
