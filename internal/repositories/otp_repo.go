package repositories

import (
	"errors"
	"fmt"
	"time"

	"artshop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OTPRepository defines the interface for one-time code storage. Issuing a
// code replaces any earlier code for the same email and purpose.
type OTPRepository interface {
	Replace(code *models.OneTimeCode) error
	Find(email, purpose string) (*models.OneTimeCode, error)
	Delete(email, purpose string) error
	PurgeExpired(now time.Time) (int64, error)
}

// GORMOTPRepository is a GORM implementation of OTPRepository.
type GORMOTPRepository struct {
	db *gorm.DB
}

// NewGORMOTPRepository creates a new instance of GORMOTPRepository.
func NewGORMOTPRepository(db *gorm.DB) *GORMOTPRepository {
	return &GORMOTPRepository{
		db: db,
	}
}

func (r *GORMOTPRepository) Replace(code *models.OneTimeCode) error {
	if code.ID == "" {
		code.ID = uuid.New().String()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("email = ? AND purpose = ?", code.Email, code.Purpose).
			Delete(&models.OneTimeCode{}).Error
		if err != nil {
			return fmt.Errorf("failed to clear previous code: %w", err)
		}
		if err := tx.Create(code).Error; err != nil {
			return fmt.Errorf("failed to store one-time code: %w", err)
		}
		return nil
	})
}

func (r *GORMOTPRepository) Find(email, purpose string) (*models.OneTimeCode, error) {
	var code models.OneTimeCode
	err := r.db.First(&code, "email = ? AND purpose = ?", email, purpose).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("one-time code for %s: %w", email, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find one-time code: %w", err)
	}
	return &code, nil
}

func (r *GORMOTPRepository) Delete(email, purpose string) error {
	err := r.db.Where("email = ? AND purpose = ?", email, purpose).
		Delete(&models.OneTimeCode{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete one-time code: %w", err)
	}
	return nil
}

// PurgeExpired removes codes past their expiry. Called from the periodic
// sweep; verification also checks expiry directly, so the sweep is purely
// housekeeping.
func (r *GORMOTPRepository) PurgeExpired(now time.Time) (int64, error) {
	res := r.db.Where("expires_at < ?", now).Delete(&models.OneTimeCode{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to purge expired codes: %w", res.Error)
	}
	return res.RowsAffected, nil
}
