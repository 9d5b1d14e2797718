package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"anonapi/internal/adapters"
	"anonapi/internal/core"
	"anonapi/internal/types"
)

func (s Service) MapStatus(ctx context.Context) (MapStatusResult, error) {
	mapping, err := s.Mapping.Load()
	if err != nil {
		return MapStatusResult{}, err
	}
	return MapStatusResult{Display: core.DisplayString(mapping)}, nil
}

// MapInit writes the example mapping template into the working
// directory, overwriting any existing mapping.
func (s Service) MapInit(ctx context.Context) (MapInitResult, error) {
	mapping := core.ExampleMapping(s.WorkDir, localDialect(), s.Clock())
	if err := s.Mapping.Save(ctx, mapping); err != nil {
		return MapInitResult{}, err
	}
	log.Ctx(ctx).Debug().Str("path", s.Mapping.Path()).Msg("mapping initialised")
	return MapInitResult{Path: s.Mapping.Path()}, nil
}

func (s Service) MapDelete(ctx context.Context) (MapDeleteResult, error) {
	if err := s.Mapping.Delete(); err != nil {
		return MapDeleteResult{}, err
	}
	return MapDeleteResult{Path: s.Mapping.Path()}, nil
}

func (s Service) MapEdit(ctx context.Context) (MapEditResult, error) {
	if !s.Mapping.Exists() {
		return MapEditResult{Path: s.Mapping.Path()}, nil
	}
	if err := s.Launcher.Open(s.Mapping.Path()); err != nil {
		return MapEditResult{}, err
	}
	return MapEditResult{Path: s.Mapping.Path(), Launched: true}, nil
}

// AddStudyFolder scans a folder, records its DICOM files as a file
// selection inside that folder, and appends a pre-filled row pointing
// at the folder.
func (s Service) AddStudyFolder(ctx context.Context, req AddStudyFolderRequest) (AddStudyFolderResult, error) {
	mapping, err := s.Mapping.Load()
	if err != nil {
		return AddStudyFolderResult{}, err
	}
	paths, err := s.Scanner.Scan(req.Path, "*", true, []string{adapters.SelectionFileName})
	if err != nil {
		return AddStudyFolderResult{}, err
	}
	selected := paths
	if req.CheckDicom {
		selected = nil
		for _, path := range paths {
			if s.Dicom.IsDicomFile(path) {
				selected = append(selected, path)
			}
		}
	}
	selection := types.FileSelection{
		Description:   filepath.Base(req.Path) + " auto-generated by anonapi",
		SelectedPaths: relativeAll(selected, req.Path),
	}
	if err := s.Selections.Save(req.Path, selection); err != nil {
		return AddStudyFolderResult{}, err
	}
	source := types.Identifier{Kind: types.SourceKindFolder, Value: req.Path}
	if err := s.appendPseudoRow(ctx, &mapping, source); err != nil {
		return AddStudyFolderResult{}, err
	}
	if err := s.Mapping.Save(ctx, mapping); err != nil {
		return AddStudyFolderResult{}, err
	}
	log.Ctx(ctx).Info().Str("folder", req.Path).Int("dicom_files", len(selected)).Msg("study folder added to mapping")
	return AddStudyFolderResult{Path: req.Path, FileCount: len(paths), DicomCount: len(selected)}, nil
}

// AddSelection appends a row for an existing file selection. The
// selection must live inside the mapping folder; its identifier is
// stored relative to the mapping so the whole folder can be moved.
func (s Service) AddSelection(ctx context.Context, req AddSelectionRequest) (AddSelectionResult, error) {
	mapping, err := s.Mapping.Load()
	if err != nil {
		return AddSelectionResult{}, err
	}
	selection, err := s.Selections.Load(filepath.Dir(req.Path))
	if err != nil {
		return AddSelectionResult{}, err
	}
	source, err := core.IdentifierForObject(selection)
	if err != nil {
		return AddSelectionResult{}, err
	}
	relative, err := s.Mapping.MakeRelative(source.Value)
	if err != nil {
		return AddSelectionResult{}, err
	}
	source.Value = relative
	if err := s.appendPseudoRow(ctx, &mapping, source); err != nil {
		return AddSelectionResult{}, err
	}
	if err := s.Mapping.Save(ctx, mapping); err != nil {
		return AddSelectionResult{}, err
	}
	return AddSelectionResult{Identifier: core.IdentifierString(source)}, nil
}

func (s Service) appendPseudoRow(ctx context.Context, mapping *types.Mapping, source types.Identifier) error {
	return core.AddRow(mapping,
		core.NewSourceParameter(source),
		core.NewParameter(types.FieldPatientID, core.PseudoPatientID()),
		core.NewParameter(types.FieldPatientName, core.PseudoPatientName()),
		core.NewParameter(types.FieldDescription, core.PseudoDescription(s.Clock())))
}

func relativeAll(paths []string, root string) []string {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		rel, err := filepath.Rel(root, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			rel = path
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}
