package repositories

import (
	"errors"
	"fmt"

	"artshop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{
		db: db,
	}
}

func (r *GORMCatalogRepository) ListGallery() ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	if err := r.db.Order("created_at ASC").Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to list gallery: %w", err)
	}
	return images, nil
}

func (r *GORMCatalogRepository) AddGalleryImage(img *models.GalleryImage) error {
	if img.ID == "" {
		img.ID = uuid.New().String()
	}
	if err := r.db.Create(img).Error; err != nil {
		return fmt.Errorf("failed to add gallery image: %w", err)
	}
	return nil
}

func (r *GORMCatalogRepository) UpdateGalleryTitle(id, title string) error {
	res := r.db.Model(&models.GalleryImage{}).Where("id = ?", id).Update("title", title)
	if res.Error != nil {
		return fmt.Errorf("failed to update gallery title: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("gallery image with ID %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *GORMCatalogRepository) DeleteGalleryImage(id string) error {
	res := r.db.Delete(&models.GalleryImage{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete gallery image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("gallery image with ID %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *GORMCatalogRepository) ListSaleItems() ([]models.SaleItem, error) {
	var items []models.SaleItem
	if err := r.db.Preload("Images").Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list sale items: %w", err)
	}
	return items, nil
}

func (r *GORMCatalogRepository) GetSaleItem(id string) (*models.SaleItem, error) {
	var item models.SaleItem
	if err := r.db.Preload("Images").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("sale item with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get sale item %s: %w", id, err)
	}
	return &item, nil
}

func (r *GORMCatalogRepository) CreateSaleItem(item *models.SaleItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	for i := range item.Images {
		if item.Images[i].ID == "" {
			item.Images[i].ID = uuid.New().String()
		}
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create sale item: %w", err)
	}
	return nil
}

// UpdateSaleItem replaces the scalar fields of a sale item. Images are
// managed through their own add/delete operations.
func (r *GORMCatalogRepository) UpdateSaleItem(item *models.SaleItem) error {
	res := r.db.Model(&models.SaleItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"title":       item.Title,
		"price":       item.Price,
		"offer":       item.Offer,
		"description": item.Description,
		"details":     item.Details,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update sale item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("sale item with ID %s: %w", item.ID, models.ErrNotFound)
	}
	return nil
}

func (r *GORMCatalogRepository) DeleteSaleItem(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_item_id = ?", id).Delete(&models.SaleItemImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete sale item images: %w", err)
		}
		res := tx.Delete(&models.SaleItem{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete sale item: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("sale item with ID %s: %w", id, models.ErrNotFound)
		}
		return nil
	})
}

func (r *GORMCatalogRepository) AddSaleItemImage(img *models.SaleItemImage) error {
	var count int64
	if err := r.db.Model(&models.SaleItem{}).Where("id = ?", img.SaleItemID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check sale item %s: %w", img.SaleItemID, err)
	}
	if count == 0 {
		return fmt.Errorf("sale item with ID %s: %w", img.SaleItemID, models.ErrNotFound)
	}
	if img.ID == "" {
		img.ID = uuid.New().String()
	}
	if err := r.db.Create(img).Error; err != nil {
		return fmt.Errorf("failed to add sale item image: %w", err)
	}
	return nil
}

func (r *GORMCatalogRepository) DeleteSaleItemImage(itemID, imageID string) error {
	res := r.db.Where("id = ? AND sale_item_id = ?", imageID, itemID).Delete(&models.SaleItemImage{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete sale item image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("image with ID %s: %w", imageID, models.ErrNotFound)
	}
	return nil
}

// GetAbout returns the single about record.
func (r *GORMCatalogRepository) GetAbout() (*models.AboutContent, error) {
	var about models.AboutContent
	if err := r.db.First(&about).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("about content: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get about content: %w", err)
	}
	return &about, nil
}

// UpsertAbout updates the single about record, creating it on first save.
func (r *GORMCatalogRepository) UpsertAbout(about *models.AboutContent) error {
	var existing models.AboutContent
	err := r.db.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		about.ID = uuid.New().String()
		if err := r.db.Create(about).Error; err != nil {
			return fmt.Errorf("failed to create about content: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load about content: %w", err)
	}
	about.ID = existing.ID
	res := r.db.Model(&models.AboutContent{}).Where("id = ?", existing.ID).Updates(map[string]interface{}{
		"photo":       about.Photo,
		"description": about.Description,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update about content: %w", res.Error)
	}
	return nil
}
