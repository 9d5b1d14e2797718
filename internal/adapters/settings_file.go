package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"anonapi/internal/ports"
	"anonapi/internal/types"
)

type SettingsFileAdapter struct {
	Path string
}

// NewSettingsFileAdapter stores settings under the user config dir
// unless an explicit path is given.
func NewSettingsFileAdapter(path string) SettingsFileAdapter {
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		path = filepath.Join(base, "anonapi", "settings.yaml")
	}
	return SettingsFileAdapter{Path: path}
}

// Load returns zero settings when the file does not exist yet; a first
// run must work without setup.
func (a SettingsFileAdapter) Load() (types.Settings, error) {
	data, err := os.ReadFile(a.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Settings{}, nil
		}
		return types.Settings{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read settings file " + a.Path).
			WithCause(err)
	}
	var settings types.Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return types.Settings{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse settings file " + a.Path).
			WithCause(err)
	}
	return settings, nil
}

func (a SettingsFileAdapter) Save(settings types.Settings) error {
	if err := os.MkdirAll(filepath.Dir(a.Path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create settings directory").
			WithCause(err)
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to serialize settings").
			WithCause(err)
	}
	if err := os.WriteFile(a.Path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + a.Path).
			WithCause(err)
	}
	return nil
}

var _ ports.SettingsPort = SettingsFileAdapter{}
