package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"anonapi/internal/core"
	"anonapi/internal/policies"
	"anonapi/internal/types"
)

// CreatePlan resolves everything a batch creation needs without side
// effects, so the CLI can show the user what is about to happen.
func (s Service) CreatePlan(ctx context.Context) (CreatePlanResult, error) {
	mapping, err := s.Mapping.Load()
	if err != nil {
		return CreatePlanResult{}, err
	}
	server, defaults, err := s.resolveJobDefaults()
	if err != nil {
		return CreatePlanResult{}, err
	}
	return CreatePlanResult{
		RowCount:    len(mapping.Rows),
		ServerName:  server.Name,
		ServerURL:   server.URL,
		Project:     defaults.Project,
		Destination: defaults.DestinationPath,
	}, nil
}

// CreateFromMapping creates one job per mapping row, sequentially and
// in row order, stopping at the first failing row so the set of created
// ids is always a clean prefix. Row failures are reported per row, not
// as the call's error; the created prefix is still recorded into the
// batch.
func (s Service) CreateFromMapping(ctx context.Context) (CreateResult, error) {
	mapping, err := s.Mapping.Load()
	if err != nil {
		return CreateResult{}, err
	}
	server, defaults, err := s.resolveJobDefaults()
	if err != nil {
		return CreateResult{}, err
	}
	policy := policies.NewRowDefaultsPolicy(s.Clock)

	var result CreateResult
	for i, row := range core.RowSets(mapping) {
		filled := policy.Fill(row)
		jobID, err := s.createJobForRow(ctx, server, defaults, filled)
		if err != nil {
			result.Results = append(result.Results, RowResult{Row: i, Err: err})
			break
		}
		result.Results = append(result.Results, RowResult{Row: i, JobID: jobID})
		result.CreatedIDs = append(result.CreatedIDs, jobID)
		log.Ctx(ctx).Info().Int("job_id", jobID).Int("row", i).Msg("job created")
	}

	if len(result.CreatedIDs) > 0 {
		saved, message, err := s.recordBatch(server, result.CreatedIDs)
		if err != nil {
			return CreateResult{}, err
		}
		result.BatchSaved = saved
		result.BatchMessage = message
	}
	return result, nil
}

func (s Service) createJobForRow(ctx context.Context, server types.Server, defaults types.JobDefaults, row core.ParameterSet) (int, error) {
	sourceParam, found := row.Get(types.FieldSource)
	if !found || sourceParam.Source == nil {
		return 0, core.NewJobCreationError("(empty)", errors.New("row has no source"))
	}
	if !core.IsPathSource(sourceParam) {
		return 0, core.NewJobCreationError(core.ParameterValue(sourceParam),
			fmt.Errorf("cannot create a path job for source kind '%s'", sourceParam.Source.Kind))
	}
	if core.IsRelativeParameter(sourceParam) {
		root := row.Value(types.FieldRootSourcePath)
		if root == "" {
			return 0, core.NewJobCreationError(core.ParameterValue(sourceParam),
				errors.New("source is relative but the mapping has no root_source_path"))
		}
		resolved, err := core.AsAbsolute(sourceParam, root)
		if err != nil {
			return 0, core.NewJobCreationError(core.ParameterValue(sourceParam), err)
		}
		sourceParam = resolved
	}

	project := firstNonEmpty(row.Value(types.FieldProject), defaults.Project)
	destination := firstNonEmpty(row.Value(types.FieldDestinationPath), defaults.DestinationPath)
	request := types.PathJobRequest{
		SourcePath:      sourceParam.Source.Value,
		AnonID:          row.Value(types.FieldPatientID),
		AnonName:        row.Value(types.FieldPatientName),
		Project:         project,
		DestinationPath: destination,
		Description:     row.Value(types.FieldDescription),
		PIMSKey:         row.Value(types.FieldPIMSKey),
	}
	return s.JobAPI.CreatePathJob(ctx, server, request)
}

// recordBatch merges the created ids into the batch of the working
// directory. A batch recorded against a different server is left alone;
// the caller gets a warning message instead.
func (s Service) recordBatch(server types.Server, created []int) (bool, string, error) {
	batch := types.Batch{ServerURL: server.URL}
	if s.Batch.Exists() {
		existing, err := s.Batch.Load()
		if err != nil {
			return false, "", err
		}
		if existing.ServerURL != server.URL {
			return false, fmt.Sprintf(
				"batch in this folder belongs to %s, not %s; job ids not recorded",
				existing.ServerURL, server.URL), nil
		}
		batch = existing
	}
	batch.JobIDs = core.MergeJobIDs(batch.JobIDs, created)
	if err := s.Batch.Save(batch); err != nil {
		return false, "", err
	}
	return true, "", nil
}

func (s Service) SetDefaults(req SetDefaultsRequest) (DefaultsResult, error) {
	settings, err := s.Settings.Load()
	if err != nil {
		return DefaultsResult{}, err
	}
	settings.JobDefaults.Project = req.Project
	settings.JobDefaults.DestinationPath = req.DestinationPath
	if err := s.Settings.Save(settings); err != nil {
		return DefaultsResult{}, err
	}
	return DefaultsResult{
		Project:         settings.JobDefaults.Project,
		DestinationPath: settings.JobDefaults.DestinationPath,
	}, nil
}

func (s Service) ShowDefaults() (DefaultsResult, error) {
	settings, err := s.Settings.Load()
	if err != nil {
		return DefaultsResult{}, err
	}
	return DefaultsResult{
		Project:         settings.JobDefaults.Project,
		DestinationPath: settings.JobDefaults.DestinationPath,
	}, nil
}

func (s Service) resolveJobDefaults() (types.Server, types.JobDefaults, error) {
	settings, err := s.Settings.Load()
	if err != nil {
		return types.Server{}, types.JobDefaults{}, err
	}
	server, err := activeServer(settings)
	if err != nil {
		return types.Server{}, types.JobDefaults{}, err
	}
	var missing []string
	if settings.JobDefaults.Project == "" {
		missing = append(missing, "project")
	}
	if settings.JobDefaults.DestinationPath == "" {
		missing = append(missing, "destination_path")
	}
	if len(missing) > 0 {
		return types.Server{}, types.JobDefaults{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf(
				"missing job defaults: %s; set them with 'create set-defaults'",
				strings.Join(missing, ", ")))
	}
	return server, settings.JobDefaults, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
