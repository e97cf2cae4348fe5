package repository

import (
	"errors"

	"order_tracker/internal/models"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	Get() (*models.Settings, error)
	Upsert(settings *models.Settings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the singleton settings row, or nil when none exists yet.
func (r *settingsRepository) Get() (*models.Settings, error) {
	var settings models.Settings
	err := r.db.First(&settings, models.SettingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert writes the singleton row, creating it on first update.
func (r *settingsRepository) Upsert(settings *models.Settings) error {
	settings.ID = models.SettingsRowID
	return r.db.Save(settings).Error
}
