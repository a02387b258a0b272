package repositories

import (
	"wedding_hall_backend/internal/models"
	"wedding_hall_backend/internal/store"
)

// SettingsRepository defines access to the process-wide feature flags.
type SettingsRepository interface {
	GetFlags() models.FeatureFlags
	SetCateringEnabled(enabled bool) models.FeatureFlags
	SetCateringOnlyMode(enabled bool) models.FeatureFlags
}

type settingsRepository struct {
	store *store.Store
}

// NewSettingsRepository creates a new instance of SettingsRepository.
func NewSettingsRepository(s *store.Store) SettingsRepository {
	return &settingsRepository{store: s}
}

func (r *settingsRepository) GetFlags() models.FeatureFlags {
	var flags models.FeatureFlags
	r.store.View(func(d *store.Data) {
		flags = d.Flags
	})
	return flags
}

func (r *settingsRepository) SetCateringEnabled(enabled bool) models.FeatureFlags {
	var flags models.FeatureFlags
	r.store.Update(func(d *store.Data) {
		d.Flags.IsCateringEnabled = enabled
		flags = d.Flags
	})
	return flags
}

func (r *settingsRepository) SetCateringOnlyMode(enabled bool) models.FeatureFlags {
	var flags models.FeatureFlags
	r.store.Update(func(d *store.Data) {
		d.Flags.CateringOnlyMode = enabled
		flags = d.Flags
	})
	return flags
}
