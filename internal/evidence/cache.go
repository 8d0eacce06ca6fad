package evidence

import (
	"io"
	"os"
	"sync"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/tincho9/plaso/internal/types"
)

// FSCache keeps evidence files open across repeated dump requests so that
// inspecting many events from the same source does not reopen it every time.
// The cache owns the handles; Close releases them all.
type FSCache struct {
	mu    sync.Mutex
	files map[uint64]*os.File
}

func NewFSCache() *FSCache {
	return &FSCache{files: make(map[uint64]*os.File)}
}

// Open returns a byte source for spec, reusing a cached handle when one
// exists. The returned value deliberately does not implement io.Closer; the
// cache decides when handles are released.
func (c *FSCache) Open(spec *types.PathSpec) (io.ReadSeeker, error) {
	if spec == nil || (spec.Type != "" && spec.Type != "os") {
		return Open(spec)
	}

	key := xxhash.Sum64String(spec.Type + "|" + spec.Path)

	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.files[key]; ok {
		return noClose{f}, nil
	}
	f, err := os.Open(spec.Path)
	if err != nil {
		return nil, err
	}
	c.files[key] = f
	return noClose{f}, nil
}

// Close releases every cached handle. The first error wins; closing
// continues regardless.
func (c *FSCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var first error
	for key, f := range c.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
		delete(c.files, key)
	}
	return first
}

// noClose hides the Close method of a cached handle.
type noClose struct {
	io.ReadSeeker
}
