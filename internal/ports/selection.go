package ports

import "anonapi/internal/types"

// SelectionStorePort persists fileselection.txt sidecars. Paths inside
// a selection are stored relative to the sidecar's folder.
type SelectionStorePort interface {
	Exists(folder string) bool
	Load(folder string) (types.FileSelection, error)
	Save(folder string, selection types.FileSelection) error
	Delete(folder string) error
	DataFilePath(folder string) string
}
