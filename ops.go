package filefutures

import (
	"errors"
	"io"
	"io/fs"
)

// Operation outcomes. Every outcome carries the exact Handle that produced
// it; receiving the outcome is receiving ownership back, so the caller
// chains by issuing the next operation on Result.Handle.

// MetadataResult is the outcome of [Handle.Metadata]
type MetadataResult struct {
	Handle *Handle
	Meta   Metadata
}

// SeekResult is the outcome of [Handle.Seek]
type SeekResult struct {
	Handle *Handle
	Pos    int64 // new absolute position
}

// ReadResult is the outcome of [Handle.Read]
type ReadResult struct {
	Handle *Handle
	N      int    // bytes read; 0 signals end of stream
	Buf    []byte // the caller's buffer, handed back for reuse
}

// WriteResult is the outcome of [Handle.Write]
type WriteResult struct {
	Handle *Handle
	N      int // bytes written; may be short, callers loop for full writes
}

// HandleResult is the unit outcome for set_len and sync operations
type HandleResult struct {
	Handle *Handle
}

// misuse builds the already-failed future returned when the caller issues an
// operation against a handle it does not currently own
func misuse[T any](op string) *Future[T] {
	return newFailed[T](op, &MisuseError{Op: op, Reason: "handle not owned by caller"})
}

// Metadata resolves to a metadata snapshot plus the handle
func (h *Handle) Metadata() *Future[MetadataResult] {
	const op = "metadata"
	if !h.claim() {
		return misuse[MetadataResult](op)
	}
	return newFuture(op, h, h.exec, func() (MetadataResult, error) {
		meta, err := h.file.Stat()
		if err != nil {
			return MetadataResult{}, err
		}
		return MetadataResult{Handle: h, Meta: meta}, nil
	})
}

// Seek resolves to the new absolute position plus the handle
func (h *Handle) Seek(spec SeekSpec) *Future[SeekResult] {
	const op = "seek"
	if !h.claim() {
		return misuse[SeekResult](op)
	}
	return newFuture(op, h, h.exec, func() (SeekResult, error) {
		pos, err := h.file.Seek(spec.Offset, spec.Whence)
		if err != nil {
			return SeekResult{}, err
		}
		return SeekResult{Handle: h, Pos: pos}, nil
	})
}

// Read fills p from the current position and resolves to the count read plus
// the buffer and handle. End of stream resolves to a zero count, not an
// error. A zero-length buffer resolves immediately without dispatching.
func (h *Handle) Read(p []byte) *Future[ReadResult] {
	const op = "read"
	if !h.claim() {
		return misuse[ReadResult](op)
	}
	if len(p) == 0 {
		return newResolved(op, h, ReadResult{Handle: h, Buf: p})
	}
	return newFuture(op, h, h.exec, func() (ReadResult, error) {
		n, err := h.file.Read(p)
		if err != nil && !errors.Is(err, io.EOF) {
			return ReadResult{}, err
		}
		return ReadResult{Handle: h, N: n, Buf: p}, nil
	})
}

// Write writes p at the current position and resolves to the count written
// plus the handle. Short writes are surfaced as-is; callers wanting a
// full-buffer guarantee compose the loop explicitly.
func (h *Handle) Write(p []byte) *Future[WriteResult] {
	const op = "write"
	if !h.claim() {
		return misuse[WriteResult](op)
	}
	return newFuture(op, h, h.exec, func() (WriteResult, error) {
		n, err := h.file.Write(p)
		if err != nil {
			return WriteResult{}, err
		}
		return WriteResult{Handle: h, N: n}, nil
	})
}

// SetLen truncates or extends the file to size bytes
func (h *Handle) SetLen(size int64) *Future[HandleResult] {
	const op = "set_len"
	if !h.claim() {
		return misuse[HandleResult](op)
	}
	return newFuture(op, h, h.exec, func() (HandleResult, error) {
		if err := h.file.Truncate(size); err != nil {
			return HandleResult{}, err
		}
		return HandleResult{Handle: h}, nil
	})
}

// SetPermissions changes the file's permission bits
func (h *Handle) SetPermissions(perm fs.FileMode) *Future[HandleResult] {
	const op = "set_permissions"
	if !h.claim() {
		return misuse[HandleResult](op)
	}
	return newFuture(op, h, h.exec, func() (HandleResult, error) {
		if err := h.file.Chmod(perm); err != nil {
			return HandleResult{}, err
		}
		return HandleResult{Handle: h}, nil
	})
}

// SyncAll resolves once file content and metadata reached stable storage
func (h *Handle) SyncAll() *Future[HandleResult] {
	const op = "sync_all"
	if !h.claim() {
		return misuse[HandleResult](op)
	}
	return newFuture(op, h, h.exec, func() (HandleResult, error) {
		if err := h.file.Sync(); err != nil {
			return HandleResult{}, err
		}
		return HandleResult{Handle: h}, nil
	})
}

// SyncData resolves once file content reached stable storage; metadata may lag
func (h *Handle) SyncData() *Future[HandleResult] {
	const op = "sync_data"
	if !h.claim() {
		return misuse[HandleResult](op)
	}
	return newFuture(op, h, h.exec, func() (HandleResult, error) {
		if err := h.file.SyncData(); err != nil {
			return HandleResult{}, err
		}
		return HandleResult{Handle: h}, nil
	})
}

var _ AsyncFile = (*Handle)(nil)
