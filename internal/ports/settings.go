package ports

import "anonapi/internal/types"

type SettingsPort interface {
	Load() (types.Settings, error)
	Save(settings types.Settings) error
}
