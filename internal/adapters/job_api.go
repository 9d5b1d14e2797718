package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"anonapi/internal/core"
	"anonapi/internal/ports"
	"anonapi/internal/shared"
	"anonapi/internal/types"
)

const defaultJobAPITimeout = 30 * time.Second

// JobAPIAdapter talks JSON over HTTP to the remote job-processing API.
// Every failure surfaces as a job-creation error; callers never see
// transport details.
type JobAPIAdapter struct {
	Client  *http.Client
	Timeout time.Duration
}

func NewJobAPIAdapter(timeoutSec int) JobAPIAdapter {
	timeout := defaultJobAPITimeout
	if timeoutSec > 0 {
		timeout = time.Duration(timeoutSec) * time.Second
	}
	return JobAPIAdapter{Client: &http.Client{Timeout: timeout}, Timeout: timeout}
}

type createPathJobResponse struct {
	JobID int `json:"job_id"`
}

func (a JobAPIAdapter) CreatePathJob(ctx context.Context, server types.Server, req types.PathJobRequest) (int, error) {
	endpoint := strings.TrimRight(server.URL, "/") + "/jobs"
	body, err := json.Marshal(req)
	if err != nil {
		return 0, core.NewJobCreationError(req.SourcePath, err)
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, core.NewJobCreationError(req.SourcePath, err)
	}
	request.Header.Set("Content-Type", "application/json")
	response, err := a.Client.Do(request)
	if err != nil {
		return 0, core.NewJobCreationError(req.SourcePath, err)
	}
	defer response.Body.Close()
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(response.Body, 4096))
		return 0, core.NewJobCreationError(req.SourcePath,
			shared.HTTPStatusError(response.StatusCode, endpoint, string(payload)))
	}
	var decoded createPathJobResponse
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return 0, core.NewJobCreationError(req.SourcePath, err)
	}
	return decoded.JobID, nil
}

func (a JobAPIAdapter) GetJobs(ctx context.Context, server types.Server, ids []int) ([]types.JobInfo, error) {
	values := url.Values{}
	for _, id := range ids {
		values.Add("job_id", strconv.Itoa(id))
	}
	endpoint := strings.TrimRight(server.URL, "/") + "/jobs?" + values.Encode()
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, core.NewJobCreationError("job query", err)
	}
	response, err := a.Client.Do(request)
	if err != nil {
		return nil, core.NewJobCreationError("job query", err)
	}
	defer response.Body.Close()
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(response.Body, 4096))
		return nil, core.NewJobCreationError("job query",
			shared.HTTPStatusError(response.StatusCode, endpoint, string(payload)))
	}
	var jobs []types.JobInfo
	if err := json.NewDecoder(response.Body).Decode(&jobs); err != nil {
		return nil, core.NewJobCreationError("job query", err)
	}
	return jobs, nil
}

var _ ports.JobAPIPort = JobAPIAdapter{}
