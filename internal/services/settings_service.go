package services

import (
	"wedding_hall_backend/internal/models"
	"wedding_hall_backend/internal/repositories"
)

// SettingsService exposes the process-wide feature flags.
type SettingsService interface {
	GetFlags() models.FeatureFlags
	SetCateringEnabled(enabled bool) models.FeatureFlags
	// SetCateringOnlyMode stores the flag; nothing downstream gates on it yet.
	SetCateringOnlyMode(enabled bool) models.FeatureFlags
}

type settingsService struct {
	settingsRepo repositories.SettingsRepository
}

// NewSettingsService creates a new instance of SettingsService.
func NewSettingsService(sr repositories.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: sr}
}

func (s *settingsService) GetFlags() models.FeatureFlags {
	return s.settingsRepo.GetFlags()
}

func (s *settingsService) SetCateringEnabled(enabled bool) models.FeatureFlags {
	return s.settingsRepo.SetCateringEnabled(enabled)
}

func (s *settingsService) SetCateringOnlyMode(enabled bool) models.FeatureFlags {
	return s.settingsRepo.SetCateringOnlyMode(enabled)
}
