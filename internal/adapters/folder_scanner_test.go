package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, root string, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestScanMatchesPatternRecursively(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.dcm")
	touch(t, root, "sub/b.dcm")
	touch(t, root, "sub/deeper/c.dcm")
	touch(t, root, "sub/readme.txt")

	paths, err := NewFolderScannerAdapter().Scan(root, "*.dcm", true, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.dcm"),
		filepath.Join(root, "sub", "b.dcm"),
		filepath.Join(root, "sub", "deeper", "c.dcm"),
	}, paths)
}

func TestScanWithoutRecursionStaysInRoot(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.dcm")
	touch(t, root, "sub/b.dcm")

	paths, err := NewFolderScannerAdapter().Scan(root, "*.dcm", false, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.dcm")}, paths)
}

func TestScanAppliesExcludePatterns(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "keep.dcm")
	touch(t, root, "skipme.dcm")

	paths, err := NewFolderScannerAdapter().Scan(root, "*.dcm", true, []string{"skip*"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "keep.dcm")}, paths)
}

func TestScanMissingRoot(t *testing.T) {
	_, err := NewFolderScannerAdapter().Scan(filepath.Join(t.TempDir(), "gone"), "*", true, nil)
	require.Error(t, err)
}
