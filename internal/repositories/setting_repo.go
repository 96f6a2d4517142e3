package repositories

import (
	"errors"
	"fmt"

	"artshop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingRepository defines the interface for the homepage settings
// history. Saves append; the current settings are the newest row.
type SettingRepository interface {
	Create(setting *models.HomepageSetting) error
	List() ([]models.HomepageSetting, error)
	Current() (*models.HomepageSetting, error)
	Delete(id string) error
}

// GORMSettingRepository is a GORM implementation of SettingRepository.
type GORMSettingRepository struct {
	db *gorm.DB
}

// NewGORMSettingRepository creates a new instance of GORMSettingRepository.
func NewGORMSettingRepository(db *gorm.DB) *GORMSettingRepository {
	return &GORMSettingRepository{
		db: db,
	}
}

func (r *GORMSettingRepository) Create(setting *models.HomepageSetting) error {
	if setting.ID == "" {
		setting.ID = uuid.New().String()
	}
	if err := r.db.Create(setting).Error; err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	return nil
}

func (r *GORMSettingRepository) List() ([]models.HomepageSetting, error) {
	var settings []models.HomepageSetting
	if err := r.db.Order("created_at DESC, id DESC").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

// Current returns the newest setting; ID breaks created_at ties so two
// saves in the same instant still yield one deterministic answer.
func (r *GORMSettingRepository) Current() (*models.HomepageSetting, error) {
	var setting models.HomepageSetting
	err := r.db.Order("created_at DESC, id DESC").First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("homepage settings: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get current setting: %w", err)
	}
	return &setting, nil
}

func (r *GORMSettingRepository) Delete(id string) error {
	res := r.db.Delete(&models.HomepageSetting{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete setting: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("setting with ID %s: %w", id, models.ErrNotFound)
	}
	return nil
}
