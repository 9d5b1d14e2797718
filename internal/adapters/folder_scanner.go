package adapters

import (
	"io/fs"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"anonapi/internal/ports"
)

type FolderScannerAdapter struct{}

func NewFolderScannerAdapter() FolderScannerAdapter {
	return FolderScannerAdapter{}
}

// Scan lists files under root whose name matches pattern, skipping any
// whose name matches an exclude pattern. Results are in walk order
// (lexical), which keeps bulk-added rows deterministic.
func (a FolderScannerAdapter) Scan(root string, pattern string, recurse bool, exclude []string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if !recurse && path != root {
				return fs.SkipDir
			}
			return nil
		}
		matched, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return err
		}
		if !matched {
			return nil
		}
		for _, ex := range exclude {
			if skip, err := filepath.Match(ex, entry.Name()); err != nil {
				return err
			} else if skip {
				return nil
			}
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan folder " + root).
			WithCause(err)
	}
	return paths, nil
}

var _ ports.FolderScannerPort = FolderScannerAdapter{}
