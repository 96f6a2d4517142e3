package repositories

import "artshop/internal/models"

// CatalogRepository defines the interface for the public content records:
// gallery images, sale items with their images, and the about page.
type CatalogRepository interface {
	ListGallery() ([]models.GalleryImage, error)
	AddGalleryImage(img *models.GalleryImage) error
	UpdateGalleryTitle(id, title string) error
	DeleteGalleryImage(id string) error

	ListSaleItems() ([]models.SaleItem, error)
	GetSaleItem(id string) (*models.SaleItem, error)
	CreateSaleItem(item *models.SaleItem) error
	UpdateSaleItem(item *models.SaleItem) error
	DeleteSaleItem(id string) error
	AddSaleItemImage(img *models.SaleItemImage) error
	DeleteSaleItemImage(itemID, imageID string) error

	GetAbout() (*models.AboutContent, error)
	UpsertAbout(about *models.AboutContent) error
}
