package backends

import (
	"io/fs"

	"github.com/brettbedarf/filefutures"
	billy "github.com/go-git/go-billy/v5"
)

// Billy adapts any billy.Filesystem (memfs, osfs, chroot jails...) as an
// Opener. The in-memory memfs variant is what the test suites run against.
type Billy struct {
	FS billy.Filesystem
}

func (b Billy) Open(name string) (filefutures.File, error) {
	f, err := b.FS.Open(name)
	if err != nil {
		return nil, err
	}
	return &billyFile{fs: b.FS, f: f, name: name}, nil
}

func (b Billy) Create(name string) (filefutures.File, error) {
	f, err := b.FS.Create(name)
	if err != nil {
		return nil, err
	}
	return &billyFile{fs: b.FS, f: f, name: name}, nil
}

var _ filefutures.Opener = Billy{}

// billyFile implements [filefutures.File] over billy.File. billy files
// carry no stat of their own, so snapshots go through the filesystem by name.
type billyFile struct {
	fs   billy.Filesystem
	f    billy.File
	name string
}

func (b *billyFile) Stat() (filefutures.Metadata, error) {
	info, err := b.fs.Stat(b.name)
	if err != nil {
		return filefutures.Metadata{}, err
	}
	return metadataFromInfo(info), nil
}

func (b *billyFile) Seek(offset int64, whence int) (int64, error) {
	return b.f.Seek(offset, whence)
}

func (b *billyFile) Read(p []byte) (int, error) { return b.f.Read(p) }

func (b *billyFile) Write(p []byte) (int, error) { return b.f.Write(p) }

func (b *billyFile) Truncate(size int64) error { return b.f.Truncate(size) }

// Chmod goes through the filesystem when the backend models permissions
// (billy.Change); memfs does not, so the change degrades to a no-op there
func (b *billyFile) Chmod(mode fs.FileMode) error {
	if ch, ok := b.fs.(billy.Change); ok {
		return ch.Chmod(b.name, mode)
	}
	return nil
}

// billy has no fsync notion; writes are durable once returned
func (b *billyFile) Sync() error { return nil }

func (b *billyFile) SyncData() error { return nil }

func (b *billyFile) Close() error { return b.f.Close() }
