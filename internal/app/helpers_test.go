package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"anonapi/internal/core"
	"anonapi/internal/types"
)

// fakeJobAPI hands out sequential job ids and can be told to fail the
// nth create call.
type fakeJobAPI struct {
	nextID     int
	failOnCall int
	failWith   error
	calls      int
	requests   []types.PathJobRequest
	servers    []types.Server
	jobs       []types.JobInfo
	jobsErr    error
	queried    []int
}

func (f *fakeJobAPI) CreatePathJob(_ context.Context, server types.Server, req types.PathJobRequest) (int, error) {
	f.calls++
	if f.failOnCall > 0 && f.calls == f.failOnCall {
		err := f.failWith
		if err == nil {
			err = errors.New("simulated API failure")
		}
		return 0, core.NewJobCreationError(req.SourcePath, err)
	}
	f.requests = append(f.requests, req)
	f.servers = append(f.servers, server)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeJobAPI) GetJobs(_ context.Context, server types.Server, ids []int) ([]types.JobInfo, error) {
	f.servers = append(f.servers, server)
	f.queried = append(f.queried, ids...)
	return f.jobs, f.jobsErr
}

type fakeLauncher struct {
	opened []string
	err    error
}

func (f *fakeLauncher) Open(path string) error {
	if f.err != nil {
		return f.err
	}
	f.opened = append(f.opened, path)
	return nil
}

func testClock() time.Time {
	return time.Date(2026, time.August, 3, 11, 30, 0, 0, time.UTC)
}

// newTestService wires a service over a temp working directory with the
// remote and OS ports faked out.
func newTestService(t *testing.T) (Service, *fakeJobAPI, *fakeLauncher) {
	t.Helper()
	api := &fakeJobAPI{}
	launcher := &fakeLauncher{}
	service := NewService(t.TempDir(), filepath.Join(t.TempDir(), "settings.yaml"))
	service.JobAPI = api
	service.Launcher = launcher
	service.Clock = testClock
	return service, api, launcher
}

func seedSettings(t *testing.T, s Service) {
	t.Helper()
	require.NoError(t, s.Settings.Save(types.Settings{
		Servers: []types.Server{
			{Name: "p01", URL: "https://anon.example.com/p01"},
			{Name: "t01", URL: "https://anon.example.com/t01"},
		},
		ActiveServer: "p01",
		JobDefaults: types.JobDefaults{
			Project:         "testproject",
			DestinationPath: "/share/destination",
		},
	}))
}

// seedMapping saves a mapping whose rows use absolute folder sources
// under the working directory, so job creation needs no path fixups.
func seedMapping(t *testing.T, s Service, sources ...types.Identifier) {
	t.Helper()
	mapping := core.NewMapping(types.DialectLF, "test mapping")
	for i, source := range sources {
		require.NoError(t, core.AddRow(&mapping,
			core.NewSourceParameter(source),
			core.NewParameter(types.FieldPatientID, "patient"+string(rune('1'+i))),
			core.NewParameter(types.FieldPatientName, "name"+string(rune('1'+i)))))
	}
	require.NoError(t, s.Mapping.Save(context.Background(), mapping))
}

func folderSource(s Service, name string) types.Identifier {
	return types.Identifier{
		Kind:  types.SourceKindFolder,
		Value: filepath.Join(s.WorkDir, name),
	}
}
