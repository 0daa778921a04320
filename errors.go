package filefutures

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// IoError reports a failed blocking call. Err is the native cause, surfaced
// verbatim and never retried. Handle carries ownership back to the caller
// when the descriptor is still usable; it is nil when the failure
// invalidated the underlying resource.
type IoError struct {
	Op     string
	Handle *Handle
	Err    error
}

func (e *IoError) Error() string {
	if e.Handle != nil {
		return fmt.Sprintf("filefutures: %s (handle %s): %v", e.Op, e.Handle.ID(), e.Err)
	}
	return fmt.Sprintf("filefutures: %s: %v", e.Op, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// DispatchError reports that the executor refused the work item. No blocking
// call ran, so handle ownership is already back with the caller.
type DispatchError struct {
	Op  string
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("filefutures: dispatch %s: %v", e.Op, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// MisuseError reports a protocol violation by the caller: polling a consumed
// future, or issuing an operation against a handle the caller does not
// currently own. Correct usage eliminates these rather than handling them.
type MisuseError struct {
	Op     string
	Reason string
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("filefutures: misuse in %s: %s", e.Op, e.Reason)
}

// fatal reports whether err means the descriptor itself is no longer usable,
// in which case the handle is not returned to the caller
func fatal(err error) bool {
	return errors.Is(err, os.ErrClosed) || errors.Is(err, syscall.EBADF)
}
