package backends

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/brettbedarf/filefutures"
	"github.com/go-git/go-billy/v5/memfs"
)

var (
	mu        sync.RWMutex
	factories = map[string]func(raw []byte) (filefutures.Opener, error){}
)

// Register ties a JSON-raw factory to a "type" key and should be called for
// each backend kind during app init
func Register(kind string, factory func(raw []byte) (filefutures.Opener, error)) {
	mu.Lock()
	factories[kind] = factory
	mu.Unlock()
}

// New picks the right factory based on the "type" field. All expected
// backend kinds should be registered with [Register] before calling.
func New(raw []byte) (filefutures.Opener, error) {
	var meta struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, err
	}
	mu.RLock()
	f, ok := factories[meta.Type]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no backend for %q", meta.Type)
	}
	return f(raw)
}

// Built-in backend kinds
type BuiltInBackendType = string

const (
	OSBackendType     BuiltInBackendType = "os"
	MemoryBackendType BuiltInBackendType = "memory"
)

// RegisterBuiltins registers all built-in backends by default
// or only the specific ones if keys are provided
func RegisterBuiltins(kinds ...BuiltInBackendType) {
	if len(kinds) == 0 {
		kinds = append(kinds, OSBackendType, MemoryBackendType)
	}

	for _, key := range kinds {
		switch key {
		case OSBackendType:
			Register(OSBackendType, func([]byte) (filefutures.Opener, error) {
				return OS{}, nil
			})
		case MemoryBackendType:
			Register(MemoryBackendType, func([]byte) (filefutures.Opener, error) {
				return Billy{FS: memfs.New()}, nil
			})
		}
	}
}
