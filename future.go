package filefutures

import "sync/atomic"

// futureState tags the single-shot operation lifecycle
type futureState uint8

const (
	stateCreated    futureState = iota // holds the request, not yet dispatched
	stateDispatched                    // handed to the executor, awaiting completion
	stateResolved                      // outcome ready to be taken
	stateFailed                        // error (and possibly the handle) ready to be taken
	stateConsumed                      // terminal; outcome was taken
)

// Future is a single-shot suspendable computation representing one in-flight
// filesystem call. It resolves exactly once, to the operation outcome paired
// with the handle that produced it; chaining means building a new future
// from the returned handle, never re-polling this one.
//
// Poll must only be called by the owning task. Completion delivery from the
// executor is the only cross-goroutine edge and is synchronized by the done
// channel; the state field itself is task-local.
type Future[T any] struct {
	state  futureState
	op     string
	run    func() (T, error)
	exec   Executor
	handle *Handle // owned while in flight; nil once transferred out or never held
	waker  atomic.Pointer[Waker]
	done   chan struct{}
	result T
	err    error
}

// newFuture builds a dispatchable future. h is the claimed handle the
// operation owns, or nil for futures that produce their own handle.
func newFuture[T any](op string, h *Handle, exec Executor, run func() (T, error)) *Future[T] {
	return &Future[T]{op: op, handle: h, exec: exec, run: run, done: make(chan struct{})}
}

// newResolved builds a future that is ready at construction and never
// touches the executor. h, if non-nil, is released when the outcome is taken.
func newResolved[T any](op string, h *Handle, v T) *Future[T] {
	return &Future[T]{op: op, state: stateResolved, handle: h, result: v}
}

// newFailed builds a future that fails at first poll without dispatching
func newFailed[T any](op string, err error) *Future[T] {
	return &Future[T]{op: op, state: stateFailed, err: err}
}

// Poll drives the future. It returns the outcome with ready=true once the
// blocking call completed, or ready=false after registering w for a wake-up.
// Spurious wake-ups are safe: re-polling while dispatched never re-submits
// the work. Polling again after the outcome was taken is a MisuseError.
func (f *Future[T]) Poll(w Waker) (v T, ready bool, err error) {
	// Register before checking for completion so a completion racing this
	// poll is either observed now or guaranteed to wake w.
	if w != nil {
		f.waker.Store(&w)
	}

	switch f.state {
	case stateCreated:
		if err := f.exec.Submit(f.work); err != nil {
			f.state = stateFailed
			f.err = &DispatchError{Op: f.op, Err: err}
			return f.take()
		}
		f.state = stateDispatched
		return f.finish()
	case stateDispatched:
		return f.finish()
	case stateResolved, stateFailed:
		return f.take()
	default:
		var zero T
		return zero, true, &MisuseError{Op: f.op, Reason: "future polled after completion"}
	}
}

// work executes the blocking call on the executor and publishes completion.
// The result fields are visible to the polling task via the done channel.
func (f *Future[T]) work() {
	f.result, f.err = f.run()
	close(f.done)
	if w := f.waker.Load(); w != nil {
		(*w).Wake()
	}
}

// finish checks for completion while dispatched and classifies the outcome
func (f *Future[T]) finish() (T, bool, error) {
	select {
	case <-f.done:
	default:
		var zero T
		return zero, false, nil
	}

	if f.err != nil {
		f.state = stateFailed
		if f.handle != nil && fatal(f.err) {
			// Descriptor unusable: the handle is not returned
			f.handle.invalidate()
			f.handle = nil
		}
		f.err = &IoError{Op: f.op, Handle: f.handle, Err: f.err}
	} else {
		f.state = stateResolved
	}
	return f.take()
}

// take hands the terminal outcome to the caller, returning handle ownership
// in the same step so the caller never observes a half-released handle
func (f *Future[T]) take() (T, bool, error) {
	if f.handle != nil {
		f.handle.release()
		f.handle = nil
	}
	if f.state == stateFailed {
		f.state = stateConsumed
		var zero T
		return zero, true, f.err
	}
	f.state = stateConsumed
	return f.result, true, nil
}
