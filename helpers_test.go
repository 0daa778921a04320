package filefutures_test

import (
	"sync/atomic"

	"github.com/brettbedarf/filefutures"
	"github.com/brettbedarf/filefutures/internal/mocks"
)

// syncExec runs submitted work inline, so futures resolve on the poll that
// dispatched them
type syncExec struct{}

func (syncExec) Submit(fn func()) error {
	fn()
	return nil
}

// manualExec captures submitted work so tests control completion timing
type manualExec struct {
	jobs []func()
}

func (m *manualExec) Submit(fn func()) error {
	m.jobs = append(m.jobs, fn)
	return nil
}

func (m *manualExec) RunAll() {
	for _, fn := range m.jobs {
		fn()
	}
	m.jobs = nil
}

// failThenSyncExec refuses the first submission and runs the rest inline
type failThenSyncExec struct {
	err    error
	failed bool
}

func (f *failThenSyncExec) Submit(fn func()) error {
	if !f.failed {
		f.failed = true
		return f.err
	}
	fn()
	return nil
}

// countWaker records how many wake notifications were delivered
type countWaker struct {
	n atomic.Int32
}

func (w *countWaker) Wake() { w.n.Add(1) }

func newMockHandle(exec filefutures.Executor) (*filefutures.Handle, *mocks.MockFile) {
	file := &mocks.MockFile{}
	return filefutures.NewHandle(file, exec), file
}
