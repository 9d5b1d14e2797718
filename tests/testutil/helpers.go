// Package testutil provides shared test helpers used across integration
// and unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"anonapi/internal/adapters"
	"anonapi/internal/types"
)

// WriteDicomFile writes a minimal DICOM part 10 file (128-byte preamble
// plus "DICM") at path, creating parent directories as needed.
func WriteDicomFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	content := append(make([]byte, 128), []byte("DICM")...)
	require.NoError(t, os.WriteFile(path, content, 0644))
}

// WriteSettings persists a settings file with one active server and the
// given job defaults, returning the file's path.
func WriteSettings(t *testing.T, dir string, serverURL string, defaults types.JobDefaults) string {
	t.Helper()
	path := filepath.Join(dir, "settings.yaml")
	store := adapters.NewSettingsFileAdapter(path)
	require.NoError(t, store.Save(types.Settings{
		Servers:      []types.Server{{Name: "test", URL: serverURL}},
		ActiveServer: "test",
		JobDefaults:  defaults,
	}))
	return path
}
