// Package backends provides blocking-filesystem implementations of
// filefutures.File and filefutures.Opener, plus a config-driven registry
// for picking one at runtime.
package backends

import (
	"io/fs"
	"os"

	"github.com/brettbedarf/filefutures"
)

// OS is the production backend over the local filesystem
type OS struct{}

func (OS) Open(name string) (filefutures.File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return &osFile{f: f}, nil
}

func (OS) Create(name string) (filefutures.File, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	return &osFile{f: f}, nil
}

var _ filefutures.Opener = OS{}

// osFile implements [filefutures.File] over *os.File
type osFile struct {
	f *os.File
}

func (o *osFile) Stat() (filefutures.Metadata, error) {
	info, err := o.f.Stat()
	if err != nil {
		return filefutures.Metadata{}, err
	}
	return metadataFromInfo(info), nil
}

func (o *osFile) Seek(offset int64, whence int) (int64, error) {
	return o.f.Seek(offset, whence)
}

func (o *osFile) Read(p []byte) (int, error) { return o.f.Read(p) }

func (o *osFile) Write(p []byte) (int, error) { return o.f.Write(p) }

func (o *osFile) Truncate(size int64) error { return o.f.Truncate(size) }

func (o *osFile) Chmod(mode fs.FileMode) error { return o.f.Chmod(mode) }

func (o *osFile) Sync() error { return o.f.Sync() }

// SyncData falls back to a full sync; Go exposes no portable fdatasync
func (o *osFile) SyncData() error { return o.f.Sync() }

func (o *osFile) Close() error { return o.f.Close() }

// metadataFromInfo builds the standardized snapshot from a stat result
func metadataFromInfo(info fs.FileInfo) filefutures.Metadata {
	return filefutures.Metadata{
		Size:    info.Size(),
		Mode:    info.Mode(),
		IsDir:   info.IsDir(),
		ModTime: info.ModTime(),
	}
}
