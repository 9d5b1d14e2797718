package adapters

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"anonapi/internal/core"
	"anonapi/internal/ports"
	"anonapi/internal/shared"
	"anonapi/internal/types"
)

// MappingFileName is the sidecar holding the mapping of a working
// directory. The name is historical; the content is the sectioned
// format in core, not plain CSV.
const MappingFileName = "anon_mapping.csv"

type MappingFileAdapter struct {
	Dir string
}

func NewMappingFileAdapter(dir string) MappingFileAdapter {
	return MappingFileAdapter{Dir: dir}
}

func (a MappingFileAdapter) Exists() bool {
	info, err := os.Stat(a.Path())
	return err == nil && !info.IsDir()
}

func (a MappingFileAdapter) Load() (types.Mapping, error) {
	data, err := os.ReadFile(a.Path())
	if err != nil {
		return types.Mapping{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no mapping defined in " + a.Dir).
			WithCause(err)
	}
	return core.DeserializeMapping(bytes.NewReader(data))
}

func (a MappingFileAdapter) Save(ctx context.Context, mapping types.Mapping) error {
	if err := core.ValidateMapping(ctx, mapping); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := core.SerializeMapping(mapping, &buf); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to serialize mapping").
			WithCause(err)
	}
	if err := os.WriteFile(a.Path(), buf.Bytes(), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + a.Path()).
			WithCause(err)
	}
	return nil
}

func (a MappingFileAdapter) Delete() error {
	if err := os.Remove(a.Path()); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no mapping defined in " + a.Dir).
			WithCause(err)
	}
	return nil
}

func (a MappingFileAdapter) Path() string {
	return filepath.Join(a.Dir, MappingFileName)
}

func (a MappingFileAdapter) Folder() string {
	return a.Dir
}

func (a MappingFileAdapter) MakeRelative(path string) (string, error) {
	absolute := path
	if !filepath.IsAbs(absolute) {
		absolute = filepath.Join(a.Dir, path)
	}
	rel, ok := shared.RelativeTo(absolute, a.Dir)
	if !ok {
		return "", core.NewPathOutsideMappingError(path, a.Dir)
	}
	return filepath.ToSlash(rel), nil
}

var _ ports.MappingStorePort = MappingFileAdapter{}
