package app

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"anonapi/internal/adapters"
	"anonapi/internal/types"
)

func (s Service) SelectStatus(ctx context.Context) (SelectStatusResult, error) {
	selection, err := s.Selections.Load(s.WorkDir)
	if err != nil {
		return SelectStatusResult{}, err
	}
	return SelectStatusResult{
		Description: selection.Description,
		FileCount:   len(selection.SelectedPaths),
	}, nil
}

// SelectAdd adds all files in the working directory matching the
// pattern to the selection there, creating the selection when needed.
// The sidecar itself is always excluded.
func (s Service) SelectAdd(ctx context.Context, req SelectAddRequest) (SelectAddResult, error) {
	exclude := append([]string{adapters.SelectionFileName}, req.ExcludePatterns...)
	paths, err := s.Scanner.Scan(s.WorkDir, req.Pattern, req.Recurse, exclude)
	if err != nil {
		return SelectAddResult{}, err
	}
	if req.CheckDicom {
		var dicom []string
		for _, path := range paths {
			if s.Dicom.IsDicomFile(path) {
				dicom = append(dicom, path)
			}
		}
		paths = dicom
	}

	selection := types.FileSelection{
		Description: filepath.Base(s.WorkDir) + " auto-generated by anonapi",
	}
	if s.Selections.Exists(s.WorkDir) {
		selection, err = s.Selections.Load(s.WorkDir)
		if err != nil {
			return SelectAddResult{}, err
		}
	}
	existing := map[string]struct{}{}
	for _, path := range selection.SelectedPaths {
		existing[path] = struct{}{}
	}
	for _, path := range relativeAll(paths, s.WorkDir) {
		if _, found := existing[path]; found {
			continue
		}
		existing[path] = struct{}{}
		selection.SelectedPaths = append(selection.SelectedPaths, path)
	}
	if err := s.Selections.Save(s.WorkDir, selection); err != nil {
		return SelectAddResult{}, err
	}
	log.Ctx(ctx).Debug().Int("files", len(selection.SelectedPaths)).Msg("selection updated")
	return SelectAddResult{Total: len(selection.SelectedPaths)}, nil
}

func (s Service) SelectDelete(ctx context.Context) (SelectDeleteResult, error) {
	if err := s.Selections.Delete(s.WorkDir); err != nil {
		return SelectDeleteResult{}, err
	}
	return SelectDeleteResult{Path: s.Selections.DataFilePath(s.WorkDir)}, nil
}

func (s Service) SelectEdit(ctx context.Context) (MapEditResult, error) {
	path := s.Selections.DataFilePath(s.WorkDir)
	if !s.Selections.Exists(s.WorkDir) {
		return MapEditResult{Path: path}, nil
	}
	if err := s.Launcher.Open(path); err != nil {
		return MapEditResult{}, err
	}
	return MapEditResult{Path: path, Launched: true}, nil
}
