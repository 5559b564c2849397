// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"testing"

	"github.com/stretchr/testify/mock"

	m "github.com/mouse-blink/sqlporter/internal/model"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow that registers a cleanup hook to
// assert its expectations.
func NewMockWorkflow(t *testing.T) *MockWorkflow {
	t.Helper()

	mw := &MockWorkflow{}
	mw.Mock.Test(t)

	t.Cleanup(func() { mw.AssertExpectations(t) })

	return mw
}

// Scan mocks the Scan workflow operation.
func (mw *MockWorkflow) Scan(cfg m.Config) (m.ScanResult, error) {
	args := mw.Called(cfg)

	var result m.ScanResult
	if v := args.Get(0); v != nil {
		result = v.(m.ScanResult)
	}

	return result, args.Error(1)
}

// Rewrite mocks the Rewrite workflow operation.
func (mw *MockWorkflow) Rewrite(cfg m.Config, dryRun bool, threads int) ([]m.Path, error) {
	args := mw.Called(cfg, dryRun, threads)

	var files []m.Path
	if v := args.Get(0); v != nil {
		files = v.([]m.Path)
	}

	return files, args.Error(1)
}

// Generate mocks the Generate workflow operation.
func (mw *MockWorkflow) Generate(cfg m.Config, functions []string) (m.Path, error) {
	args := mw.Called(cfg, functions)

	return args.Get(0).(m.Path), args.Error(1)
}

// LibraryFunctions mocks the LibraryFunctions workflow operation.
func (mw *MockWorkflow) LibraryFunctions(cfg m.Config) ([]string, error) {
	args := mw.Called(cfg)

	var names []string
	if v := args.Get(0); v != nil {
		names = v.([]string)
	}

	return names, args.Error(1)
}
