package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDicomFile(t *testing.T, dir string, name string) string {
	t.Helper()
	content := make([]byte, dicomPreambleSize)
	content = append(content, dicomMagic...)
	content = append(content, []byte("rest of the dataset")...)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestIsDicomFile(t *testing.T) {
	dir := t.TempDir()
	probe := NewDicomProbeAdapter()

	dicom := writeDicomFile(t, dir, "slice1.dcm")
	assert.True(t, probe.IsDicomFile(dicom))

	text := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(text, []byte("just text"), 0644))
	assert.False(t, probe.IsDicomFile(text), "short non-DICOM file")

	noMagic := filepath.Join(dir, "raw.bin")
	require.NoError(t, os.WriteFile(noMagic, make([]byte, 200), 0644))
	assert.False(t, probe.IsDicomFile(noMagic), "right size, wrong magic")

	assert.False(t, probe.IsDicomFile(filepath.Join(dir, "missing.dcm")))
}
