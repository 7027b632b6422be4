package repo

import "github.com/sahyadri-sports/backoffice/internal/models"

// SettingsRepository stores key/value application settings.
type SettingsRepository interface {
	GetAll() ([]models.Setting, error)
	Upsert(setting models.Setting) (models.Setting, error)
}
