package handlers

import (
	"artshop/internal/models"
	"artshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles the public storefront reads: gallery, sale
// items, about page, active coupons and current homepage settings.
type CatalogHandler struct {
	catalogService *services.CatalogService
	couponService  *services.CouponService
	settingService *services.SettingService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService *services.CatalogService, couponService *services.CouponService, settingService *services.SettingService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		couponService:  couponService,
		settingService: settingService,
	}
}

// RegisterRoutes registers the public routes.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/gallery", h.HandleListGallery)
	router.Get("/items", h.HandleListSaleItems)
	router.Get("/items/:id", h.HandleGetSaleItem)
	router.Get("/about", h.HandleGetAbout)
	router.Get("/coupons", h.HandleListActiveCoupons)
	router.Get("/settings/current", h.HandleCurrentSettings)
}

// SaleItemResponse augments a sale item with its effective add-to-cart
// price.
type SaleItemResponse struct {
	models.SaleItem
	DiscountedPrice float64 `json:"discounted_price"`
}

func (h *CatalogHandler) saleItemResponse(item models.SaleItem) SaleItemResponse {
	return SaleItemResponse{
		SaleItem:        item,
		DiscountedPrice: h.catalogService.EffectivePrice(&item),
	}
}

// HandleListGallery returns the portfolio images.
func (h *CatalogHandler) HandleListGallery(c *fiber.Ctx) error {
	images, err := h.catalogService.ListGallery()
	if err != nil {
		return fail(c, "Could not load gallery", err)
	}
	return c.JSON(images)
}

// HandleListSaleItems returns everything currently for sale.
func (h *CatalogHandler) HandleListSaleItems(c *fiber.Ctx) error {
	items, err := h.catalogService.ListSaleItems()
	if err != nil {
		return fail(c, "Could not load sale items", err)
	}
	out := make([]SaleItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, h.saleItemResponse(item))
	}
	return c.JSON(out)
}

// HandleGetSaleItem returns one sale item for the detail page.
func (h *CatalogHandler) HandleGetSaleItem(c *fiber.Ctx) error {
	item, err := h.catalogService.GetSaleItem(c.Params("id"))
	if err != nil {
		return fail(c, "Could not load sale item", err)
	}
	return c.JSON(h.saleItemResponse(*item))
}

// HandleGetAbout returns the about-page content.
func (h *CatalogHandler) HandleGetAbout(c *fiber.Ctx) error {
	about, err := h.catalogService.GetAbout()
	if err != nil {
		return fail(c, "Could not load about content", err)
	}
	return c.JSON(about)
}

// HandleListActiveCoupons returns the publicly promoted coupons.
func (h *CatalogHandler) HandleListActiveCoupons(c *fiber.Ctx) error {
	coupons, err := h.couponService.ListActive()
	if err != nil {
		return fail(c, "Could not load coupons", err)
	}
	return c.JSON(coupons)
}

// HandleCurrentSettings returns the homepage settings to show right now.
func (h *CatalogHandler) HandleCurrentSettings(c *fiber.Ctx) error {
	setting, err := h.settingService.Current()
	if err != nil {
		return fail(c, "Could not load settings", err)
	}
	return c.JSON(setting)
}
