package ports

// FolderScannerPort lists files under a root matching a glob pattern on
// the file name, minus excluded patterns.
type FolderScannerPort interface {
	Scan(root string, pattern string, recurse bool, exclude []string) ([]string, error)
}
