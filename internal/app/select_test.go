package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anonapi/internal/types"
)

func TestSelectAddCreatesASelection(t *testing.T) {
	service, _, _ := newTestService(t)
	writeDicom(t, filepath.Join(service.WorkDir, "a.dcm"))
	writeDicom(t, filepath.Join(service.WorkDir, "sub", "b.dcm"))

	result, err := service.SelectAdd(context.Background(),
		SelectAddRequest{Pattern: "*.dcm", Recurse: true})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)

	selection, err := service.Selections.Load(service.WorkDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.dcm", "sub/b.dcm"}, selection.SelectedPaths)
}

func TestSelectAddIsIdempotent(t *testing.T) {
	service, _, _ := newTestService(t)
	writeDicom(t, filepath.Join(service.WorkDir, "a.dcm"))

	_, err := service.SelectAdd(context.Background(),
		SelectAddRequest{Pattern: "*.dcm", Recurse: true})
	require.NoError(t, err)
	result, err := service.SelectAdd(context.Background(),
		SelectAddRequest{Pattern: "*.dcm", Recurse: true})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total, "re-adding the same files must not duplicate them")
}

func TestSelectAddNeverIncludesTheSidecarItself(t *testing.T) {
	service, _, _ := newTestService(t)
	writeDicom(t, filepath.Join(service.WorkDir, "a.dcm"))
	_, err := service.SelectAdd(context.Background(),
		SelectAddRequest{Pattern: "*", Recurse: true})
	require.NoError(t, err)

	result, err := service.SelectAdd(context.Background(),
		SelectAddRequest{Pattern: "*", Recurse: true})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
}

func TestSelectAddCheckDicom(t *testing.T) {
	service, _, _ := newTestService(t)
	writeDicom(t, filepath.Join(service.WorkDir, "a.dcm"))
	require.NoError(t, os.WriteFile(filepath.Join(service.WorkDir, "b.dcm"), []byte("fake"), 0644))

	result, err := service.SelectAdd(context.Background(),
		SelectAddRequest{Pattern: "*.dcm", Recurse: true, CheckDicom: true})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
}

func TestSelectAddExcludePatterns(t *testing.T) {
	service, _, _ := newTestService(t)
	writeDicom(t, filepath.Join(service.WorkDir, "keep.dcm"))
	writeDicom(t, filepath.Join(service.WorkDir, "skip.dcm"))

	result, err := service.SelectAdd(context.Background(), SelectAddRequest{
		Pattern: "*.dcm", Recurse: true, ExcludePatterns: []string{"skip*"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
}

func TestSelectStatus(t *testing.T) {
	service, _, _ := newTestService(t)
	require.NoError(t, service.Selections.Save(service.WorkDir, types.FileSelection{
		Description:   "three files",
		SelectedPaths: []string{"a", "b", "c"},
	}))

	result, err := service.SelectStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "three files", result.Description)
	assert.Equal(t, 3, result.FileCount)
}

func TestSelectStatusWithoutSelection(t *testing.T) {
	service, _, _ := newTestService(t)
	_, err := service.SelectStatus(context.Background())
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestSelectDelete(t *testing.T) {
	service, _, _ := newTestService(t)
	require.NoError(t, service.Selections.Save(service.WorkDir, types.FileSelection{}))

	_, err := service.SelectDelete(context.Background())
	require.NoError(t, err)
	assert.False(t, service.Selections.Exists(service.WorkDir))

	_, err = service.SelectDelete(context.Background())
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestSelectEdit(t *testing.T) {
	service, _, launcher := newTestService(t)

	result, err := service.SelectEdit(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Launched)

	require.NoError(t, service.Selections.Save(service.WorkDir, types.FileSelection{}))
	result, err = service.SelectEdit(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Launched)
	assert.Equal(t, []string{service.Selections.DataFilePath(service.WorkDir)}, launcher.opened)
}
