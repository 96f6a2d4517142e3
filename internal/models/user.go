package models

import "time"

// User is the root account record. Addresses, orders and used-coupon
// entries are owned rows and are removed together with the user.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	IsVerified bool   `json:"is_verified"`
	IsAdmin    bool   `json:"is_admin"`
	Name       string `json:"name" validate:"omitempty,max=100"`
	Phone      string `json:"phone" validate:"omitempty,max=30"`
	ProfilePic string `json:"profile_pic"`

	Addresses   []Address    `json:"addresses" gorm:"constraint:OnDelete:CASCADE"`
	Orders      []Order      `json:"orders" gorm:"constraint:OnDelete:CASCADE"`
	UsedCoupons []UsedCoupon `json:"used_coupons" gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UsedCouponCodes flattens the used-coupon rows into plain codes.
func (u *User) UsedCouponCodes() []string {
	codes := make([]string, 0, len(u.UsedCoupons))
	for _, uc := range u.UsedCoupons {
		codes = append(codes, uc.Code)
	}
	return codes
}

// AddressFields is the shared shape of a delivery address. Address rows add
// identity for per-user management; orders embed it as a frozen snapshot.
type AddressFields struct {
	Name        string `json:"name" validate:"required,max=100"`
	Phone       string `json:"phone" validate:"required,max=30"`
	FullAddress string `json:"full_address" validate:"required,max=500"`
	City        string `json:"city" validate:"required,max=100"`
	State       string `json:"state" validate:"required,max=100"`
	Pincode     string `json:"pincode" validate:"required,max=20"`
}

// Address is a saved delivery address, addressed by its own ID rather than
// by position in a list.
type Address struct {
	ID            string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID        string `json:"user_id" gorm:"index;type:varchar(36)"`
	AddressFields `gorm:"embedded"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UsedCoupon records a coupon code redeemed by a user. The unique index on
// (user_id, code) makes recording idempotent.
type UsedCoupon struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserID    string    `json:"-" gorm:"uniqueIndex:idx_user_coupon;type:varchar(36)"`
	Code      string    `json:"code" gorm:"uniqueIndex:idx_user_coupon;type:varchar(64)"`
	CreatedAt time.Time `json:"created_at"`
}
