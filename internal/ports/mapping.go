package ports

import (
	"context"

	"anonapi/internal/types"
)

// MappingStorePort persists the mapping sidecar file of one working
// directory. Mappings are always reloaded whole; nothing is cached
// between calls.
type MappingStorePort interface {
	Exists() bool
	Load() (types.Mapping, error)
	Save(ctx context.Context, mapping types.Mapping) error
	Delete() error
	Path() string
	Folder() string

	// MakeRelative rewrites a path known to live under the mapping
	// folder into a folder-relative one. A path outside the folder is
	// an error, never silently recorded.
	MakeRelative(path string) (string, error)
}
