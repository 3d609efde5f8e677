package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/yousiffaraj287/file-stats/pkg/filestats"
)

// Run orchestrates one analysis after configuration loading: it bounds the
// context with the configured scan timeout, invokes the Analyzer, and emits
// the success or error object through the Reporter.
//
// A non-nil return means the process must exit 1; the JSON error object has
// already been written by then, so callers must not print the error again.
func Run(ctx context.Context, opts filestats.Options, logger *slog.Logger) error {
	reporter := filestats.NewReporter(opts.Out, opts.Logger)

	analyzer := opts.Analyzer
	if analyzer == nil {
		analyzer = filestats.NewDefaultAnalyzer(opts.Logger)
	}

	if opts.ScanTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.ScanTimeout)
		defer cancel()
	}

	result, err := analyzer.Analyze(ctx, opts.Path)
	if err != nil {
		logger.Error("Analysis failed", slog.String("path", opts.Path), slog.Any("error", err))
		if emitErr := reporter.EmitError(errorMessage(err)); emitErr != nil {
			logger.Error("Emitting error object failed", slog.Any("error", emitErr))
		}
		return err
	}

	logger.Debug("Analysis succeeded",
		slog.String("filename", result.Filename),
		slog.Int64("lines", result.Lines),
		slog.Int64("words", result.Words),
		slog.Int64("characters", result.Characters),
		slog.Int64("sizeBytes", result.SizeBytes),
	)
	if err := reporter.EmitSuccess(result); err != nil {
		logger.Error("Emitting success object failed", slog.Any("error", err))
		return err
	}
	return nil
}

// errorMessage maps an analysis error to its canonical wire message. The
// taxonomy the orchestrator sees stays small: open failures of any kind share
// one message, timeouts another.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return filestats.TimeoutMessage
	case errors.Is(err, filestats.ErrNotReadable):
		return filestats.NotReadableMessage
	default:
		return err.Error()
	}
}
