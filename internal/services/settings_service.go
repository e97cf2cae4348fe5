package services

import (
	"order_tracker/internal/models"
	"order_tracker/internal/repository"
)

type SettingsService interface {
	// GetWithDefaults never returns nil: a missing row yields a
	// settings value with every default filled in.
	GetWithDefaults() (*models.Settings, error)
	Update(settings *models.Settings) (*models.Settings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) GetWithDefaults() (*models.Settings, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &models.Settings{}
	}
	settings.ApplyDefaults()
	return settings, nil
}

func (s *settingsService) Update(settings *models.Settings) (*models.Settings, error) {
	settings.ApplyDefaults()
	if err := s.settingsRepo.Upsert(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
