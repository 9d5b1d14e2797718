package ports

import (
	"context"

	"anonapi/internal/types"
)

// JobAPIPort is the remote job-processing API boundary. Implementations
// surface every failure (settings, transport, API-reported) as a single
// job-creation error; callers do not distinguish further.
type JobAPIPort interface {
	CreatePathJob(ctx context.Context, server types.Server, req types.PathJobRequest) (int, error)
	GetJobs(ctx context.Context, server types.Server, ids []int) ([]types.JobInfo, error)
}
