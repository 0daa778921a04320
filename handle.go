package filefutures

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Handle ownership states. A handle is either fully idle (caller-owned) or
// fully busy (owned by an in-flight future); there is no partial visibility.
const (
	handleIdle int32 = iota
	handleBusy
	handleLost // descriptor invalidated by a failed operation
	handleClosed
)

// Handle is the exclusively-owned open-file resource futures operate on.
// At most one operation may be in flight per handle at any instant; the
// claim below is the enforcement, there is no lock around the File itself
// because only the current owner ever touches it.
type Handle struct {
	id    uuid.UUID
	file  File
	exec  Executor
	state atomic.Int32
}

// NewHandle wraps an already-open File. Futures built from the handle
// dispatch their blocking calls through exec.
func NewHandle(file File, exec Executor) *Handle {
	return &Handle{id: uuid.New(), file: file, exec: exec}
}

// ID identifies the handle in logs and errors
func (h *Handle) ID() uuid.UUID { return h.id }

// Lost reports whether a failed operation invalidated the descriptor.
// A lost handle accepts no further operations; Close still releases the
// underlying resource if the backend allows it.
func (h *Handle) Lost() bool { return h.state.Load() == handleLost }

// claim transfers ownership from the caller to an operation future
func (h *Handle) claim() bool {
	return h.state.CompareAndSwap(handleIdle, handleBusy)
}

// release transfers ownership back to the caller
func (h *Handle) release() {
	h.state.Store(handleIdle)
}

// invalidate marks the descriptor permanently unusable
func (h *Handle) invalidate() {
	h.state.Store(handleLost)
}

// Close destroys the underlying resource. Closing is the caller's job once
// no future owns the handle; closing while an operation is in flight is a
// protocol violation since ownership sits with the dispatched call.
func (h *Handle) Close() error {
	for {
		switch s := h.state.Load(); s {
		case handleBusy:
			return &MisuseError{Op: "close", Reason: "operation in flight"}
		case handleClosed:
			return &MisuseError{Op: "close", Reason: "handle already closed"}
		default: // idle, or lost and being reclaimed
			if h.state.CompareAndSwap(s, handleClosed) {
				return h.file.Close()
			}
		}
	}
}
