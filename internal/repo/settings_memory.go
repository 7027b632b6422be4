package repo

import (
	"time"

	"github.com/sahyadri-sports/backoffice/internal/models"
)

// InMemorySettingsRepository is an in-memory implementation of SettingsRepository.
type InMemorySettingsRepository struct {
	settings []models.Setting
}

func NewInMemorySettingsRepository() *InMemorySettingsRepository {
	return &InMemorySettingsRepository{}
}

func (r *InMemorySettingsRepository) GetAll() ([]models.Setting, error) {
	return r.settings, nil
}

func (r *InMemorySettingsRepository) Upsert(s models.Setting) (models.Setting, error) {
	s.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	for i, existing := range r.settings {
		if existing.Key == s.Key {
			r.settings[i] = s
			return s, nil
		}
	}
	r.settings = append(r.settings, s)
	return s, nil
}

func (r *InMemorySettingsRepository) Clear() {
	r.settings = nil
}
