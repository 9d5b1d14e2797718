package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"anonapi/internal/core"
	"anonapi/internal/types"
)

func (s Service) BatchInit(ctx context.Context) (BatchResult, error) {
	if s.Batch.Exists() {
		return BatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg("batch already defined in " + s.WorkDir)
	}
	settings, err := s.Settings.Load()
	if err != nil {
		return BatchResult{}, err
	}
	server, err := activeServer(settings)
	if err != nil {
		return BatchResult{}, err
	}
	batch := types.Batch{ServerURL: server.URL}
	if err := s.Batch.Save(batch); err != nil {
		return BatchResult{}, err
	}
	return BatchResult{Path: s.Batch.Path(), Server: server.URL}, nil
}

func (s Service) BatchDelete(ctx context.Context) (BatchResult, error) {
	if err := s.Batch.Delete(); err != nil {
		return BatchResult{}, err
	}
	return BatchResult{Path: s.Batch.Path()}, nil
}

// BatchAdd merges manually supplied job ids into the batch, keeping the
// sorted unique invariant.
func (s Service) BatchAdd(ctx context.Context, req BatchAddRequest) (BatchResult, error) {
	batch, err := s.Batch.Load()
	if err != nil {
		return BatchResult{}, err
	}
	batch.JobIDs = core.MergeJobIDs(batch.JobIDs, req.IDs)
	if err := s.Batch.Save(batch); err != nil {
		return BatchResult{}, err
	}
	return BatchResult{Path: s.Batch.Path(), Server: batch.ServerURL, IDs: batch.JobIDs}, nil
}

// BatchStatus polls the batch's server for the state of every recorded
// job.
func (s Service) BatchStatus(ctx context.Context) (BatchStatusResult, error) {
	batch, err := s.Batch.Load()
	if err != nil {
		return BatchStatusResult{}, err
	}
	jobs, err := s.JobAPI.GetJobs(ctx, types.Server{URL: batch.ServerURL}, batch.JobIDs)
	if err != nil {
		return BatchStatusResult{}, err
	}
	return BatchStatusResult{ServerURL: batch.ServerURL, Jobs: jobs}, nil
}
