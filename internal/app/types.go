package app

import "anonapi/internal/types"

type MapStatusResult struct {
	Display string
}

type MapInitResult struct {
	Path string
}

type MapDeleteResult struct {
	Path string
}

type MapEditResult struct {
	Path     string
	Launched bool
}

type AddStudyFolderRequest struct {
	Path       string
	CheckDicom bool
}

type AddStudyFolderResult struct {
	Path       string
	FileCount  int
	DicomCount int
}

type AddSelectionRequest struct {
	Path string
}

type AddSelectionResult struct {
	Identifier string
}

type SelectStatusResult struct {
	Description string
	FileCount   int
}

type SelectAddRequest struct {
	Pattern         string
	Recurse         bool
	CheckDicom      bool
	ExcludePatterns []string
}

type SelectAddResult struct {
	Total int
}

type SelectDeleteResult struct {
	Path string
}

type CreatePlanResult struct {
	RowCount    int
	ServerName  string
	ServerURL   string
	Project     string
	Destination string
}

// RowResult is the outcome for one mapping row: either a created job id
// or the error that stopped the loop.
type RowResult struct {
	Row   int
	JobID int
	Err   error
}

type CreateResult struct {
	Results      []RowResult
	CreatedIDs   []int
	BatchSaved   bool
	BatchMessage string
}

type SetDefaultsRequest struct {
	Project         string
	DestinationPath string
}

type DefaultsResult struct {
	Project         string
	DestinationPath string
}

type BatchResult struct {
	Path   string
	Server string
	IDs    []int
}

type BatchStatusResult struct {
	ServerURL string
	Jobs      []types.JobInfo
}

type BatchAddRequest struct {
	IDs []int
}

type ServerListResult struct {
	Servers []types.Server
	Active  string
}

type ServerActivateRequest struct {
	Name string
}

type ServerStatusResult struct {
	Server types.Server
}
