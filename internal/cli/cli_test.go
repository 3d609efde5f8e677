package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yousiffaraj287/file-stats/internal/cli"
	"github.com/yousiffaraj287/file-stats/internal/testutil"
	"github.com/yousiffaraj287/file-stats/pkg/filestats"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// decodeObject parses the single JSON object written during a run.
func decodeObject(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var obj map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &obj), "stdout must carry exactly one well-formed JSON object")
	return obj
}

// TestRun_Success verifies a successful analysis is emitted as the
// success-shaped object and Run returns nil.
func TestRun_Success(t *testing.T) {
	analyzer := new(testutil.MockAnalyzer)
	analyzer.On("Analyze", mock.Anything, "notes.txt").Return(filestats.Result{
		Filename:   "notes.txt",
		Lines:      2,
		Words:      3,
		Characters: 16,
		SizeBytes:  16,
	}, nil).Once()

	var buf bytes.Buffer
	opts := filestats.Options{Path: "notes.txt", Out: &buf, Analyzer: analyzer}

	err := cli.Run(context.Background(), opts, discardLogger())
	require.NoError(t, err)
	analyzer.AssertExpectations(t)

	obj := decodeObject(t, &buf)
	assert.Equal(t, "file_stats", obj["tool"])
	assert.Equal(t, "success", obj["status"])
	assert.Equal(t, "notes.txt", obj["filename"])
	assert.Equal(t, float64(2), obj["lines"])
	assert.Equal(t, float64(3), obj["words"])
	assert.Equal(t, float64(16), obj["characters"])
	assert.Equal(t, float64(16), obj["size_bytes"])
}

// TestRun_NotReadable verifies an open failure maps to the canonical message
// and a non-nil error for the exit code.
func TestRun_NotReadable(t *testing.T) {
	analyzer := new(testutil.MockAnalyzer)
	analyzer.On("Analyze", mock.Anything, "missing.txt").
		Return(filestats.Result{}, fmt.Errorf("%w: no such file", filestats.ErrNotReadable)).Once()

	var buf bytes.Buffer
	opts := filestats.Options{Path: "missing.txt", Out: &buf, Analyzer: analyzer}

	err := cli.Run(context.Background(), opts, discardLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, filestats.ErrNotReadable)

	obj := decodeObject(t, &buf)
	assert.Equal(t, "file_stats", obj["tool"])
	assert.Equal(t, "error", obj["status"])
	assert.Equal(t, "Unable to open file", obj["error"])
}

// TestRun_Timeout verifies a deadline-exceeded analysis emits the timeout
// message the orchestrator recognizes.
func TestRun_Timeout(t *testing.T) {
	analyzer := new(testutil.MockAnalyzer)
	analyzer.On("Analyze", mock.Anything, "slow.txt").
		Return(filestats.Result{}, context.DeadlineExceeded).Once()

	var buf bytes.Buffer
	opts := filestats.Options{Path: "slow.txt", Out: &buf, Analyzer: analyzer}

	err := cli.Run(context.Background(), opts, discardLogger())
	require.Error(t, err)

	obj := decodeObject(t, &buf)
	assert.Equal(t, "error", obj["status"])
	assert.Equal(t, "Tool execution timed out", obj["error"])
}

// TestRun_ScanTimeoutBoundsContext verifies a positive ScanTimeout puts a
// deadline on the context handed to the Analyzer.
func TestRun_ScanTimeoutBoundsContext(t *testing.T) {
	analyzer := new(testutil.MockAnalyzer)
	analyzer.On("Analyze", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), "bounded.txt").Return(filestats.Result{Filename: "bounded.txt"}, nil).Once()

	var buf bytes.Buffer
	opts := filestats.Options{
		Path:        "bounded.txt",
		Out:         &buf,
		Analyzer:    analyzer,
		ScanTimeout: 5 * time.Second,
	}

	require.NoError(t, cli.Run(context.Background(), opts, discardLogger()))
	analyzer.AssertExpectations(t)
}

// TestRun_DefaultAnalyzerEndToEnd exercises Run with the real analyzer
// against a file on disk.
func TestRun_DefaultAnalyzerEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	testutil.CreateDummyFile(t, path, "hello world\nfoo\n")

	var buf bytes.Buffer
	opts := filestats.Options{Path: path, Out: &buf}

	require.NoError(t, cli.Run(context.Background(), opts, discardLogger()))

	obj := decodeObject(t, &buf)
	assert.Equal(t, "success", obj["status"])
	assert.Equal(t, float64(2), obj["lines"])
	assert.Equal(t, float64(3), obj["words"])
	assert.Equal(t, float64(16), obj["characters"])
	assert.Equal(t, float64(16), obj["size_bytes"])
}
