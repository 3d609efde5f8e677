package filestats

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// successObject is the success-shaped wire object. Field order is fixed:
// tool, filename, lines, words, characters, size_bytes, status.
type successObject struct {
	Tool       string `json:"tool"`
	Filename   string `json:"filename"`
	Lines      int64  `json:"lines"`
	Words      int64  `json:"words"`
	Characters int64  `json:"characters"`
	SizeBytes  int64  `json:"size_bytes"`
	Status     string `json:"status"`
}

// errorObject is the error-shaped wire object.
type errorObject struct {
	Tool   string `json:"tool"`
	Error  string `json:"error"`
	Status string `json:"status"`
}

// Reporter writes exactly one well-formed JSON object, followed by a newline,
// to its output stream. The two Emit methods are the only observable outputs
// of the whole program; no diagnostic text is ever interleaved with the JSON
// object on that stream.
//
// String values pass through encoding/json, so filenames or messages
// containing quotes, backslashes, or control bytes still yield valid JSON.
type Reporter struct {
	out    io.Writer
	logger *slog.Logger
}

// NewReporter creates a Reporter writing to out. A nil handler discards logs.
func NewReporter(out io.Writer, loggerHandler slog.Handler) *Reporter { // minimal comment
	if loggerHandler == nil {
		loggerHandler = slog.NewTextHandler(io.Discard, nil)
	}
	logger := slog.New(loggerHandler).With(slog.String("component", "reporter"))
	return &Reporter{out: out, logger: logger}
}

// EmitSuccess writes the success object for res.
func (r *Reporter) EmitSuccess(res Result) error {
	return r.emit(successObject{
		Tool:       ToolName,
		Filename:   res.Filename,
		Lines:      res.Lines,
		Words:      res.Words,
		Characters: res.Characters,
		SizeBytes:  res.SizeBytes,
		Status:     StatusSuccess,
	})
}

// EmitError writes the error object carrying message.
func (r *Reporter) EmitError(message string) error {
	return r.emit(errorObject{
		Tool:   ToolName,
		Error:  message,
		Status: StatusError,
	})
}

// emit marshals v indented and writes it with a trailing newline, matching
// the shape the orchestrator already strips and parses.
func (r *Reporter) emit(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		// Unreachable for the two fixed object shapes, but surfaced anyway.
		r.logger.Error("Marshalling output object failed", slog.Any("error", err))
		return fmt.Errorf("failed to marshal output object: %w", err)
	}
	data = append(data, '\n')
	if _, err := r.out.Write(data); err != nil {
		r.logger.Error("Writing output object failed", slog.Any("error", err))
		return fmt.Errorf("failed to write output object: %w", err)
	}
	return nil
}
