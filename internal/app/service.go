package app

import (
	"runtime"
	"time"

	"anonapi/internal/adapters"
	"anonapi/internal/ports"
	"anonapi/internal/types"
)

type Service struct {
	WorkDir    string
	Mapping    ports.MappingStorePort
	Batch      ports.BatchStorePort
	Selections ports.SelectionStorePort
	Settings   ports.SettingsPort
	Dicom      ports.DicomProbePort
	Scanner    ports.FolderScannerPort
	JobAPI     ports.JobAPIPort
	Launcher   ports.LaunchPort
	Clock      func() time.Time
}

// NewService wires the default adapters for one working directory.
// Commands construct a fresh service per invocation; no state survives
// between runs except what is on disk.
func NewService(workDir string, settingsPath string) Service {
	return Service{
		WorkDir:    workDir,
		Mapping:    adapters.NewMappingFileAdapter(workDir),
		Batch:      adapters.NewBatchFileAdapter(workDir),
		Selections: adapters.NewSelectionFileAdapter(),
		Settings:   adapters.NewSettingsFileAdapter(settingsPath),
		Dicom:      adapters.NewDicomProbeAdapter(),
		Scanner:    adapters.NewFolderScannerAdapter(),
		JobAPI:     adapters.NewJobAPIAdapter(0),
		Launcher:   adapters.NewLaunchOSAdapter(),
		Clock:      time.Now,
	}
}

// localDialect resolves the text formatting convention of the machine a
// mapping is created on. It is persisted with the mapping so later
// saves reproduce the same shape anywhere.
func localDialect() types.Dialect {
	if runtime.GOOS == "windows" {
		return types.DialectCRLF
	}
	return types.DialectLF
}
