package cli

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"anonapi/internal/core"
)

func commandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	return names
}

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	names := commandNames(newRootCommand())
	expected := []string{"map", "select", "create", "batch", "server"}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestRootCommandPersistentFlags(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"config", "log-level", "dir", "settings"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing flag: %s", name)
	}
}

func TestMapCommandTree(t *testing.T) {
	names := commandNames(newMapCommand())
	expected := []string{"status", "init", "delete", "edit", "add-study-folder", "add-selection"}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing map subcommand: %s", name)
	}
}

func TestSelectCommandTree(t *testing.T) {
	names := commandNames(newSelectCommand())
	for _, name := range []string{"status", "add", "delete", "edit"} {
		assert.Contains(t, names, name, "missing select subcommand: %s", name)
	}
}

func TestCreateCommandTree(t *testing.T) {
	names := commandNames(newCreateCommand())
	for _, name := range []string{"from-mapping", "set-defaults", "show-defaults"} {
		assert.Contains(t, names, name, "missing create subcommand: %s", name)
	}
}

func TestBatchCommandTree(t *testing.T) {
	names := commandNames(newBatchCommand())
	for _, name := range []string{"status", "init", "delete", "add"} {
		assert.Contains(t, names, name, "missing batch subcommand: %s", name)
	}
}

func TestServerCommandTree(t *testing.T) {
	names := commandNames(newServerCommand())
	for _, name := range []string{"list", "activate", "status"} {
		assert.Contains(t, names, name, "missing server subcommand: %s", name)
	}
}

func TestFromMappingCommandFlags(t *testing.T) {
	cmd := newCreateFromMappingCommand()
	assert.NotNil(t, cmd.Flags().Lookup("yes"))
}

func TestSetDefaultsCommandFlags(t *testing.T) {
	cmd := newCreateSetDefaultsCommand()
	assert.NotNil(t, cmd.Flags().Lookup("project"))
	assert.NotNil(t, cmd.Flags().Lookup("destination"))
}

func TestSelectAddCommandFlags(t *testing.T) {
	cmd := newSelectAddCommand()
	for _, name := range []string{"recurse", "check-dicom", "exclude-pattern"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestAddStudyFolderCommandFlags(t *testing.T) {
	cmd := newMapAddStudyFolderCommand()
	flag := cmd.Flags().Lookup("check-dicom")
	assert.NotNil(t, flag)
	assert.Equal(t, "true", flag.DefValue, "DICOM filtering is on unless switched off")
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "parse error",
			err:      core.NewParameterParsingError("flavour,x", "unknown field"),
			expected: 2,
		},
		{
			name:     "corrupt mapping",
			err:      core.NewMappingLoadError(3, "??", "unrecognized section marker"),
			expected: 2,
		},
		{
			name: "batch already exists",
			err: errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("batch already defined"),
			expected: 2,
		},
		{
			name:     "path outside mapping",
			err:      core.NewPathOutsideMappingError("/a/b", "/c"),
			expected: 3,
		},
		{
			name: "missing defaults",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("missing job defaults: project"),
			expected: 3,
		},
		{
			name:     "job creation failure",
			err:      core.NewJobCreationError("case1", errors.New("server said no")),
			expected: 4,
		},
		{
			name: "generic internal",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("boom"),
			expected: 5,
		},
		{
			name: "not found",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("no mapping defined"),
			expected: 5,
		},
		{
			name:     "unknown error",
			err:      assert.AnError,
			expected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exitCodeForError(tt.err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name: "errbuilder with msg",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("something broke"),
			expected: "something broke",
		},
		{
			name:     "plain error",
			err:      assert.AnError,
			expected: assert.AnError.Error(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errorMessage(tt.err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
