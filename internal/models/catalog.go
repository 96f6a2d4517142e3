package models

import "time"

// GalleryImage is a public portfolio entry. The URL points at the external
// image host; raw bytes are never stored.
type GalleryImage struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	URL       string    `json:"url" validate:"required,url"`
	Title     string    `json:"title" validate:"required,max=200"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaleItem is an artwork listed for sale. Offer is a catalog-level
// percentage discount, distinct from coupons, and defaults to zero.
type SaleItem struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string          `json:"title" validate:"required,max=200"`
	Price       float64         `json:"price" validate:"required,gt=0"`
	Offer       int             `json:"offer" gorm:"default:0" validate:"gte=0,lte=100"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	Details     string          `json:"details" validate:"omitempty,max=2000"`
	Images      []SaleItemImage `json:"images" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SaleItemImage is one image of a sale item, addressed by its own ID.
type SaleItemImage struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	SaleItemID string    `json:"-" gorm:"index;type:varchar(36)"`
	URL        string    `json:"url" validate:"required,url"`
	CreatedAt  time.Time `json:"created_at"`
}

// AboutContent is the single about-page record.
type AboutContent struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Photo       string    `json:"photo" validate:"required"`
	Description string    `json:"description" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
