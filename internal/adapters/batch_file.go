package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"anonapi/internal/ports"
	"anonapi/internal/types"
)

const BatchFileName = "anon_batch.yaml"

type BatchFileAdapter struct {
	Dir string
}

func NewBatchFileAdapter(dir string) BatchFileAdapter {
	return BatchFileAdapter{Dir: dir}
}

func (a BatchFileAdapter) Exists() bool {
	info, err := os.Stat(a.Path())
	return err == nil && !info.IsDir()
}

func (a BatchFileAdapter) Load() (types.Batch, error) {
	data, err := os.ReadFile(a.Path())
	if err != nil {
		return types.Batch{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no batch defined in " + a.Dir).
			WithCause(err)
	}
	var batch types.Batch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return types.Batch{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse batch file " + a.Path()).
			WithCause(err)
	}
	return batch, nil
}

func (a BatchFileAdapter) Save(batch types.Batch) error {
	data, err := yaml.Marshal(batch)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to serialize batch").
			WithCause(err)
	}
	if err := os.WriteFile(a.Path(), data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + a.Path()).
			WithCause(err)
	}
	return nil
}

func (a BatchFileAdapter) Delete() error {
	if err := os.Remove(a.Path()); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no batch defined in " + a.Dir).
			WithCause(err)
	}
	return nil
}

func (a BatchFileAdapter) Path() string {
	return filepath.Join(a.Dir, BatchFileName)
}

var _ ports.BatchStorePort = BatchFileAdapter{}
