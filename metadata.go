package filefutures

import (
	"io"
	"io/fs"
	"time"
)

// Metadata is a standardized point-in-time snapshot of a file's attributes
// across all backend types
type Metadata struct {
	Size    int64
	Mode    fs.FileMode // permission bits (plus fs.ModeDir for directories)
	IsDir   bool
	ModTime time.Time
}

// SeekSpec names a target position for [Handle.Seek]. Whence reuses the
// io.Seeker constants so backends can pass the spec straight through.
type SeekSpec struct {
	Offset int64
	Whence int
}

// SeekStart targets offset bytes from the start of the file
func SeekStart(offset int64) SeekSpec {
	return SeekSpec{Offset: offset, Whence: io.SeekStart}
}

// SeekCurrent targets offset bytes relative to the current cursor
func SeekCurrent(offset int64) SeekSpec {
	return SeekSpec{Offset: offset, Whence: io.SeekCurrent}
}

// SeekEnd targets offset bytes relative to the end of the file
func SeekEnd(offset int64) SeekSpec {
	return SeekSpec{Offset: offset, Whence: io.SeekEnd}
}
