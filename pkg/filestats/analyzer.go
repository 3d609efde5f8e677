package filestats

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Analyzer produces statistics for a single file path.
//
// Stability: Public Stable API - implementations can be provided externally
// (e.g. for testing via Options.Analyzer). Any open-time failure must be
// reported as an error matching ErrNotReadable via errors.Is.
type Analyzer interface {
	// Analyze opens the file at path, measures its size, scans its bytes once
	// and returns the populated Result. The context bounds the scan; a
	// cancelled or expired context aborts it with the context's error.
	Analyze(ctx context.Context, path string) (Result, error)
}

// DefaultAnalyzer is the standard Analyzer implementation: a single
// sequential, byte-oriented pass over the file with blocking I/O.
type DefaultAnalyzer struct {
	logger *slog.Logger
}

// NewDefaultAnalyzer creates a DefaultAnalyzer logging through the given
// handler. A nil handler discards logs.
func NewDefaultAnalyzer(loggerHandler slog.Handler) Analyzer { // minimal comment
	if loggerHandler == nil {
		loggerHandler = slog.NewTextHandler(io.Discard, nil)
	}
	logger := slog.New(loggerHandler).With(slog.String("component", "analyzer"))
	return &DefaultAnalyzer{logger: logger}
}

// ctxCheckInterval controls how often the scan loop polls for cancellation.
// Checking per byte would dominate the loop cost.
const ctxCheckInterval = 64 * 1024

// Analyze implements the Analyzer interface.
//
// The size is measured once, authoritatively, by seeking to the end of the
// stream before the scan; it can legitimately differ from the byte count if
// the file is modified concurrently. The file is opened in raw binary mode
// (os.Open performs no newline translation), so for a stable file
// Characters == SizeBytes.
func (a *DefaultAnalyzer) Analyze(ctx context.Context, path string) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		a.logger.Debug("Open failed", slog.String("path", path), slog.Any("error", err))
		// Sub-causes are conflated on purpose; the orchestrator only
		// distinguishes success/error via the "status" field.
		return Result{}, fmt.Errorf("%w: %v", ErrNotReadable, err)
	}
	defer file.Close()

	var res Result
	res.Filename = path
	if len(res.Filename) > MaxFilenameLen {
		res.Filename = res.Filename[:MaxFilenameLen]
	}

	size, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		a.logger.Debug("Seek to end failed", slog.String("path", path), slog.Any("error", err))
		return Result{}, fmt.Errorf("%w: %v", ErrNotReadable, err)
	}
	res.SizeBytes = size
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		a.logger.Debug("Rewind failed", slog.String("path", path), slog.Any("error", err))
		return Result{}, fmt.Errorf("%w: %v", ErrNotReadable, err)
	}

	reader := bufio.NewReader(file)
	inWord := false
	for {
		if res.Characters%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				a.logger.Warn("Scan aborted by context",
					slog.String("path", path),
					slog.Int64("bytesScanned", res.Characters),
					slog.Any("error", err))
				return Result{}, err
			}
		}

		b, err := reader.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A read failure after a successful open is folded into the same
			// single error condition as an open failure.
			a.logger.Debug("Read failed mid-scan", slog.String("path", path), slog.Any("error", err))
			return Result{}, fmt.Errorf("%w: %v", ErrNotReadable, err)
		}

		res.Characters++
		if b == '\n' {
			res.Lines++
		}
		if isASCIISpace(b) {
			inWord = false
		} else if !inWord {
			inWord = true
			res.Words++
		}
	}

	a.logger.Debug("Analysis complete",
		slog.String("path", res.Filename),
		slog.Int64("lines", res.Lines),
		slog.Int64("words", res.Words),
		slog.Int64("characters", res.Characters),
		slog.Int64("sizeBytes", res.SizeBytes),
	)
	return res, nil
}

// isASCIISpace reports whether b is whitespace under the standard ASCII
// classification: space, horizontal tab, newline, vertical tab, form feed,
// carriage return.
func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
