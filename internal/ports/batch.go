package ports

import "anonapi/internal/types"

// BatchStorePort persists the batch record of one working directory as
// a whole (read-modify-write).
type BatchStorePort interface {
	Exists() bool
	Load() (types.Batch, error)
	Save(batch types.Batch) error
	Delete() error
	Path() string
}
