package services

import (
	"fmt"

	"artshop/internal/models"
	"artshop/internal/repositories"
)

// CouponService handles coupon management and redemption checks.
type CouponService struct {
	repo repositories.CouponRepository
}

// NewCouponService creates a new CouponService.
func NewCouponService(repo repositories.CouponRepository) *CouponService {
	return &CouponService{
		repo: repo,
	}
}

// Validate checks a submitted code against the active coupon set and the
// requesting user's used-coupon list. It never mutates anything: recording
// a use happens only on successful order placement.
func (s *CouponService) Validate(code string, usedCodes []string) (*models.Coupon, error) {
	normalized := models.NormalizeCouponCode(code)
	if normalized == "" {
		return nil, fmt.Errorf("empty code: %w", models.ErrCouponInvalid)
	}

	coupon, err := s.repo.GetByCode(normalized)
	if err != nil {
		return nil, fmt.Errorf("coupon %s: %w", normalized, models.ErrCouponInvalid)
	}
	if !coupon.IsActive {
		return nil, fmt.Errorf("coupon %s is inactive: %w", normalized, models.ErrCouponInvalid)
	}

	for _, used := range usedCodes {
		if used == normalized {
			return nil, fmt.Errorf("coupon %s: %w", normalized, models.ErrCouponUsed)
		}
	}
	return coupon, nil
}

// Add creates a coupon with a normalized code. Duplicates are a conflict.
func (s *CouponService) Add(code string, discount int) (*models.Coupon, error) {
	normalized := models.NormalizeCouponCode(code)
	if normalized == "" {
		return nil, fmt.Errorf("coupon code is required")
	}
	if discount <= 0 || discount > 100 {
		return nil, fmt.Errorf("discount must be between 1 and 100")
	}

	coupon := &models.Coupon{
		Code:     normalized,
		Discount: discount,
		IsActive: true,
	}
	if err := s.repo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// GetAll returns every coupon for the back office.
func (s *CouponService) GetAll() ([]models.Coupon, error) {
	return s.repo.GetAll()
}

// ListActive returns the publicly visible coupons.
func (s *CouponService) ListActive() ([]models.Coupon, error) {
	return s.repo.ListActive()
}

// Delete removes a coupon by ID.
func (s *CouponService) Delete(id string) error {
	return s.repo.Delete(id)
}
