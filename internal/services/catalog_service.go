package services

import (
	"artshop/internal/models"
	"artshop/internal/pricing"
	"artshop/internal/repositories"
)

// CatalogService handles gallery, sale item and about-page content.
type CatalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) ListGallery() ([]models.GalleryImage, error) {
	return s.repo.ListGallery()
}

func (s *CatalogService) AddGalleryImage(url, title string) (*models.GalleryImage, error) {
	img := &models.GalleryImage{URL: url, Title: title}
	if err := s.repo.AddGalleryImage(img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *CatalogService) UpdateGalleryTitle(id, title string) error {
	return s.repo.UpdateGalleryTitle(id, title)
}

func (s *CatalogService) DeleteGalleryImage(id string) error {
	return s.repo.DeleteGalleryImage(id)
}

func (s *CatalogService) ListSaleItems() ([]models.SaleItem, error) {
	return s.repo.ListSaleItems()
}

func (s *CatalogService) GetSaleItem(id string) (*models.SaleItem, error) {
	return s.repo.GetSaleItem(id)
}

func (s *CatalogService) CreateSaleItem(item *models.SaleItem) error {
	return s.repo.CreateSaleItem(item)
}

func (s *CatalogService) UpdateSaleItem(item *models.SaleItem) error {
	return s.repo.UpdateSaleItem(item)
}

func (s *CatalogService) DeleteSaleItem(id string) error {
	return s.repo.DeleteSaleItem(id)
}

func (s *CatalogService) AddSaleItemImage(itemID, url string) (*models.SaleItemImage, error) {
	img := &models.SaleItemImage{SaleItemID: itemID, URL: url}
	if err := s.repo.AddSaleItemImage(img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *CatalogService) DeleteSaleItemImage(itemID, imageID string) error {
	return s.repo.DeleteSaleItemImage(itemID, imageID)
}

func (s *CatalogService) GetAbout() (*models.AboutContent, error) {
	return s.repo.GetAbout()
}

func (s *CatalogService) UpdateAbout(photo, description string) (*models.AboutContent, error) {
	about := &models.AboutContent{Photo: photo, Description: description}
	if err := s.repo.UpsertAbout(about); err != nil {
		return nil, err
	}
	return about, nil
}

// EffectivePrice is the add-to-cart price of a sale item: its base price
// with the catalog offer applied.
func (s *CatalogService) EffectivePrice(item *models.SaleItem) float64 {
	return pricing.DiscountedPrice(item.Price, item.Offer)
}
