// Package evidence opens the byte sources that events point back into. The
// only access method implemented here is plain files ("os"); other path-spec
// types would slot in behind Open.
package evidence

import (
	"fmt"
	"io"
	"os"

	"github.com/tincho9/plaso/internal/types"
)

// Open resolves a path spec to a seekable byte source. Callers own the
// returned handle and should close it when it implements io.Closer.
func Open(spec *types.PathSpec) (io.ReadSeeker, error) {
	if spec == nil {
		return nil, fmt.Errorf("nil path spec")
	}
	switch spec.Type {
	case "", "os":
		return os.Open(spec.Path)
	default:
		return nil, fmt.Errorf("unknown path spec type %q", spec.Type)
	}
}
