package types

// PathJobRequest carries the fully resolved values for one
// create-path-job call against the remote API.
type PathJobRequest struct {
	SourcePath      string `json:"source_path"`
	AnonID          string `json:"anonymized_id"`
	AnonName        string `json:"anonymized_name"`
	Project         string `json:"project_name"`
	DestinationPath string `json:"destination_path"`
	Description     string `json:"description"`
	PIMSKey         string `json:"pims_keyfile_id,omitempty"`
}

type JobInfo struct {
	ID     int    `json:"job_id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
