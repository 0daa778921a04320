// Package filefutures adapts blocking filesystem calls into single-shot,
// poll-driven futures for use inside a cooperative single-threaded scheduler.
// Each operation consumes its Handle and resolves to the outcome paired with
// that same Handle, so a chain of operations never re-acquires the resource
// and never has more than one call in flight per handle.
package filefutures

import "io/fs"

// Waker receives the readiness notification for a task suspended on a
// [Future]. Wake must be safe to call from any goroutine and may fire
// spuriously; the suspended task reacts by re-polling.
type Waker interface {
	Wake()
}

// Executor runs blocking work off the polling thread. It is the external
// execution-context collaborator the dispatch bridge hands work to.
//
// Submit must not block: an executor that cannot accept the work item
// (saturated, shut down) returns an error instead, which the future
// surfaces as a [DispatchError] without the blocking call ever running.
type Executor interface {
	Submit(fn func()) error
}

// File is the blocking filesystem collaborator a [Handle] drives. Methods
// follow standard filesystem semantics and are only ever called from the
// executor's context, never from the polling thread.
type File interface {
	// Stat returns a point-in-time metadata snapshot
	Stat() (Metadata, error)

	// Seek moves the cursor per the io.Seeker contract and returns the new
	// absolute position
	Seek(offset int64, whence int) (int64, error)

	// Read reads up to len(p) bytes into p from the current position
	Read(p []byte) (int, error)

	// Write writes up to len(p) bytes from p at the current position.
	// Short writes are legal and surfaced as-is
	Write(p []byte) (int, error)

	// Truncate changes the file to the given length
	Truncate(size int64) error

	// Chmod changes the file's permission bits. Backends without a
	// permission model may treat this as a no-op
	Chmod(mode fs.FileMode) error

	// Sync flushes file content and metadata to stable storage
	Sync() error

	// SyncData flushes file content, allowing metadata to lag
	SyncData() error

	Close() error
}

// Opener produces Files for [FS] open/create futures
type Opener interface {
	Open(name string) (File, error)
	Create(name string) (File, error)
}

// AsyncFile is the handle capability interface: the async-wrapped operations
// available on an open file. Every method consumes the handle and returns a
// future resolving to the outcome paired with the handle; the handle is not
// available again until that future is taken.
type AsyncFile interface {
	Metadata() *Future[MetadataResult]
	Seek(spec SeekSpec) *Future[SeekResult]
	Read(p []byte) *Future[ReadResult]
	Write(p []byte) *Future[WriteResult]
	SetLen(size int64) *Future[HandleResult]
	SetPermissions(perm fs.FileMode) *Future[HandleResult]
	SyncAll() *Future[HandleResult]
	SyncData() *Future[HandleResult]
}
