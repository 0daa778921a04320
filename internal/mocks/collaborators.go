// Package mocks holds testify mocks for the external collaborators, shared
// across package test suites.
package mocks

import (
	"io/fs"

	"github.com/brettbedarf/filefutures"
	"github.com/stretchr/testify/mock"
)

// MockExecutor implements filefutures.Executor for testing across packages
type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) Submit(fn func()) error {
	args := m.Called(fn)
	return args.Error(0)
}

var _ filefutures.Executor = (*MockExecutor)(nil)

// MockFile implements filefutures.File for testing across packages
type MockFile struct {
	mock.Mock
}

func (m *MockFile) Stat() (filefutures.Metadata, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return filefutures.Metadata{}, args.Error(1)
	}
	return args.Get(0).(filefutures.Metadata), args.Error(1)
}

func (m *MockFile) Seek(offset int64, whence int) (int64, error) {
	args := m.Called(offset, whence)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFile) Read(p []byte) (int, error) {
	args := m.Called(p)

	// Handle function return types (for tests that fill the buffer)
	if fn, ok := args.Get(0).(func([]byte) int); ok {
		return fn(p), args.Error(1)
	}
	return args.Int(0), args.Error(1)
}

func (m *MockFile) Write(p []byte) (int, error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

func (m *MockFile) Truncate(size int64) error {
	args := m.Called(size)
	return args.Error(0)
}

func (m *MockFile) Chmod(mode fs.FileMode) error {
	args := m.Called(mode)
	return args.Error(0)
}

func (m *MockFile) Sync() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockFile) SyncData() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockFile) Close() error {
	args := m.Called()
	return args.Error(0)
}

var _ filefutures.File = (*MockFile)(nil)
