package models

import (
	"strings"
	"time"
)

// Coupon is a percentage-discount code, consumable at most once per user.
// Codes are stored uppercase.
type Coupon struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Code      string    `json:"code" gorm:"uniqueIndex;type:varchar(64)" validate:"required,min=2,max=64"`
	Discount  int       `json:"discount" validate:"required,gt=0,lte=100"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeCouponCode trims and uppercases a user-submitted code.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
