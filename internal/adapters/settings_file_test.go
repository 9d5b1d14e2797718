package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anonapi/internal/types"
)

func TestSettingsFileAdapterSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "settings.yaml")
	adapter := NewSettingsFileAdapter(path)

	settings := types.Settings{
		Servers: []types.Server{
			{Name: "p01", URL: "https://umcradanonp11.umcn.nl/p01"},
			{Name: "t01", URL: "https://umcradanonp11.umcn.nl/t01"},
		},
		ActiveServer: "t01",
		JobDefaults: types.JobDefaults{
			Project:         "Wetenschap-Algemeen",
			DestinationPath: `\\server\share\myfolder`,
		},
	}
	require.NoError(t, adapter.Save(settings))

	loaded, err := adapter.Load()
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestSettingsFileAdapterMissingFileYieldsZeroSettings(t *testing.T) {
	adapter := NewSettingsFileAdapter(filepath.Join(t.TempDir(), "nothing.yaml"))
	settings, err := adapter.Load()
	require.NoError(t, err)
	assert.Equal(t, types.Settings{}, settings)
}

func TestSettingsFileAdapterCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("servers: {broken\n"), 0644))

	_, err := NewSettingsFileAdapter(path).Load()
	require.Error(t, err)
}

func TestSettingsFileAdapterDefaultsToUserConfigDir(t *testing.T) {
	adapter := NewSettingsFileAdapter("")
	assert.Contains(t, adapter.Path, filepath.Join("anonapi", "settings.yaml"))
}
