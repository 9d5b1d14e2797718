package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"anonapi/internal/ports"
	"anonapi/internal/types"
)

const SelectionFileName = "fileselection.txt"

type SelectionFileAdapter struct{}

func NewSelectionFileAdapter() SelectionFileAdapter {
	return SelectionFileAdapter{}
}

func (a SelectionFileAdapter) Exists(folder string) bool {
	info, err := os.Stat(a.DataFilePath(folder))
	return err == nil && !info.IsDir()
}

func (a SelectionFileAdapter) Load(folder string) (types.FileSelection, error) {
	path := a.DataFilePath(folder)
	data, err := os.ReadFile(path)
	if err != nil {
		return types.FileSelection{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no file selection defined in " + folder).
			WithCause(err)
	}
	var selection types.FileSelection
	if err := yaml.Unmarshal(data, &selection); err != nil {
		return types.FileSelection{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse file selection " + path).
			WithCause(err)
	}
	selection.DataFilePath = path
	return selection, nil
}

func (a SelectionFileAdapter) Save(folder string, selection types.FileSelection) error {
	data, err := yaml.Marshal(selection)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to serialize file selection").
			WithCause(err)
	}
	if err := os.WriteFile(a.DataFilePath(folder), data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + a.DataFilePath(folder)).
			WithCause(err)
	}
	return nil
}

func (a SelectionFileAdapter) Delete(folder string) error {
	if err := os.Remove(a.DataFilePath(folder)); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no file selection defined in " + folder).
			WithCause(err)
	}
	return nil
}

func (a SelectionFileAdapter) DataFilePath(folder string) string {
	return filepath.Join(folder, SelectionFileName)
}

var _ ports.SelectionStorePort = SelectionFileAdapter{}
