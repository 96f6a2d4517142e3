package services

import (
	"fmt"

	"artshop/internal/models"
	"artshop/internal/repositories"
)

// SettingService handles the homepage settings history.
type SettingService struct {
	repo repositories.SettingRepository
}

// NewSettingService creates a new SettingService.
func NewSettingService(repo repositories.SettingRepository) *SettingService {
	return &SettingService{
		repo: repo,
	}
}

// Save appends a new settings entry. At least one of the two messages has
// to be present.
func (s *SettingService) Save(setting *models.HomepageSetting) error {
	if setting.MarqueeText == "" && setting.PopupText == "" {
		return fmt.Errorf("at least one of marquee or popup is required")
	}
	return s.repo.Create(setting)
}

// History returns all saved settings, newest first.
func (s *SettingService) History() ([]models.HomepageSetting, error) {
	return s.repo.List()
}

// Current returns the settings the storefront should show right now.
func (s *SettingService) Current() (*models.HomepageSetting, error) {
	return s.repo.Current()
}

// Delete removes one history entry.
func (s *SettingService) Delete(id string) error {
	return s.repo.Delete(id)
}
