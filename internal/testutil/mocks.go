// Package testutil provides mock implementations for interfaces defined in
// the file-stats core library (pkg/filestats), plus small filesystem helpers.
// These mocks facilitate unit testing by isolating components.
package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yousiffaraj287/file-stats/pkg/filestats"
)

// MockAnalyzer provides a mock implementation of the filestats.Analyzer
// interface. Configure expectations using testify/mock methods
// (e.g. .On("Analyze", ...).Return(...)). See filestats.Analyzer for the
// interface contract.
type MockAnalyzer struct {
	mock.Mock
}

// Analyze mocks the Analyze method.
func (m *MockAnalyzer) Analyze(ctx context.Context, path string) (result filestats.Result, err error) {
	args := m.Called(ctx, path)
	result, _ = args.Get(0).(filestats.Result)
	err = args.Error(1)
	return
}
