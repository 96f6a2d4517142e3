package repositories

import "artshop/internal/models"

// CouponRepository defines the interface for coupon data access.
type CouponRepository interface {
	Create(coupon *models.Coupon) error
	GetByCode(code string) (*models.Coupon, error)
	GetAll() ([]models.Coupon, error)
	ListActive() ([]models.Coupon, error)
	Delete(id string) error
}
