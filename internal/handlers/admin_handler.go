package handlers

import (
	"log"

	"artshop/internal/models"
	"artshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the back-office routes: users, orders, catalog,
// coupons and homepage settings. The caller applies both the
// authentication and the admin middleware.
type AdminHandler struct {
	accountService *services.AccountService
	orderService   *services.OrderService
	catalogService *services.CatalogService
	couponService  *services.CouponService
	settingService *services.SettingService
	validate       *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(accountService *services.AccountService, orderService *services.OrderService, catalogService *services.CatalogService, couponService *services.CouponService, settingService *services.SettingService) *AdminHandler {
	return &AdminHandler{
		accountService: accountService,
		orderService:   orderService,
		catalogService: catalogService,
		couponService:  couponService,
		settingService: settingService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the admin routes.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	admin := router.Group("/admin")

	admin.Get("/users", h.HandleListUsers)
	admin.Delete("/users/:id", h.HandleDeleteUser)

	admin.Get("/orders", h.HandleListAllOrders)
	admin.Patch("/orders/:userID/:orderID/status", h.HandleUpdateOrderStatus)
	admin.Delete("/orders/:userID/:orderID", h.HandleDeleteOrder)

	admin.Post("/gallery", h.HandleAddGalleryImage)
	admin.Put("/gallery/:id", h.HandleUpdateGalleryTitle)
	admin.Delete("/gallery/:id", h.HandleDeleteGalleryImage)

	admin.Post("/items", h.HandleCreateSaleItem)
	admin.Put("/items/:id", h.HandleUpdateSaleItem)
	admin.Delete("/items/:id", h.HandleDeleteSaleItem)
	admin.Post("/items/:id/images", h.HandleAddSaleItemImage)
	admin.Delete("/items/:id/images/:imageID", h.HandleDeleteSaleItemImage)

	admin.Put("/about", h.HandleUpdateAbout)

	admin.Get("/coupons", h.HandleListCoupons)
	admin.Post("/coupons", h.HandleAddCoupon)
	admin.Delete("/coupons/:id", h.HandleDeleteCoupon)

	admin.Get("/settings", h.HandleListSettings)
	admin.Post("/settings", h.HandleSaveSetting)
	admin.Delete("/settings/:id", h.HandleDeleteSetting)
}

// HandleListUsers returns all accounts.
func (h *AdminHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.accountService.ListUsers()
	if err != nil {
		return fail(c, "Could not list users", err)
	}
	return c.JSON(users)
}

// HandleDeleteUser removes an account and everything it owns.
func (h *AdminHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if err := h.accountService.DeleteUser(c.Params("id")); err != nil {
		return fail(c, "Could not delete user", err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}

// HandleListAllOrders returns every order with its owner, newest first.
func (h *AdminHandler) HandleListAllOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.ListAll()
	if err != nil {
		return fail(c, "Could not list orders", err)
	}
	return c.JSON(orders)
}

// UpdateStatusRequest represents the request body for a status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// HandleUpdateOrderStatus sets any label from the fixed status set on an
// order addressed by (owner ID, order ID).
func (h *AdminHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	userID := c.Params("userID")
	orderID := c.Params("orderID")
	if err := h.orderService.UpdateStatus(userID, orderID, req.Status); err != nil {
		log.Printf("Error updating status for order %s: %v", orderID, err)
		return fail(c, "Could not update order status", err)
	}
	return c.JSON(fiber.Map{"message": "Order status updated"})
}

// HandleDeleteOrder permanently removes any order.
func (h *AdminHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	if err := h.orderService.Delete(c.Params("userID"), c.Params("orderID"), true); err != nil {
		return fail(c, "Could not delete order", err)
	}
	return c.JSON(fiber.Map{"message": "Order deleted"})
}

// GalleryImageRequest represents the request body for a gallery entry.
type GalleryImageRequest struct {
	URL   string `json:"url" validate:"required,url"`
	Title string `json:"title" validate:"required,max=200"`
}

// HandleAddGalleryImage stores a new gallery entry.
func (h *AdminHandler) HandleAddGalleryImage(c *fiber.Ctx) error {
	var req GalleryImageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	img, err := h.catalogService.AddGalleryImage(req.URL, req.Title)
	if err != nil {
		return fail(c, "Could not add gallery image", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Image added",
		"image":   img,
	})
}

// GalleryTitleRequest represents the request body for a title change.
type GalleryTitleRequest struct {
	Title string `json:"title" validate:"required,max=200"`
}

// HandleUpdateGalleryTitle renames a gallery entry.
func (h *AdminHandler) HandleUpdateGalleryTitle(c *fiber.Ctx) error {
	var req GalleryTitleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	if err := h.catalogService.UpdateGalleryTitle(c.Params("id"), req.Title); err != nil {
		return fail(c, "Could not update title", err)
	}
	return c.JSON(fiber.Map{"message": "Title updated successfully"})
}

// HandleDeleteGalleryImage removes a gallery entry.
func (h *AdminHandler) HandleDeleteGalleryImage(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteGalleryImage(c.Params("id")); err != nil {
		return fail(c, "Could not delete gallery image", err)
	}
	return c.JSON(fiber.Map{"message": "Image deleted"})
}

// SaleItemRequest represents the request body for sale item create and
// update.
type SaleItemRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Offer       int      `json:"offer" validate:"gte=0,lte=100"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Details     string   `json:"details" validate:"omitempty,max=2000"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
}

// HandleCreateSaleItem lists a new artwork for sale.
func (h *AdminHandler) HandleCreateSaleItem(c *fiber.Ctx) error {
	var req SaleItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	item := &models.SaleItem{
		Title:       req.Title,
		Price:       req.Price,
		Offer:       req.Offer,
		Description: req.Description,
		Details:     req.Details,
	}
	for _, url := range req.Images {
		item.Images = append(item.Images, models.SaleItemImage{URL: url})
	}

	if err := h.catalogService.CreateSaleItem(item); err != nil {
		return fail(c, "Could not save sale item", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Sale item added",
		"item":    item,
	})
}

// HandleUpdateSaleItem replaces the scalar fields of a sale item.
func (h *AdminHandler) HandleUpdateSaleItem(c *fiber.Ctx) error {
	var req SaleItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	item := &models.SaleItem{
		ID:          c.Params("id"),
		Title:       req.Title,
		Price:       req.Price,
		Offer:       req.Offer,
		Description: req.Description,
		Details:     req.Details,
	}
	if err := h.catalogService.UpdateSaleItem(item); err != nil {
		return fail(c, "Could not update sale item", err)
	}
	return c.JSON(fiber.Map{"message": "Sale item updated"})
}

// HandleDeleteSaleItem removes a sale item and its images.
func (h *AdminHandler) HandleDeleteSaleItem(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteSaleItem(c.Params("id")); err != nil {
		return fail(c, "Could not delete sale item", err)
	}
	return c.JSON(fiber.Map{"message": "Sale item deleted"})
}

// SaleItemImageRequest represents the request body for adding one image.
type SaleItemImageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// HandleAddSaleItemImage attaches another image to a sale item.
func (h *AdminHandler) HandleAddSaleItemImage(c *fiber.Ctx) error {
	var req SaleItemImageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	img, err := h.catalogService.AddSaleItemImage(c.Params("id"), req.URL)
	if err != nil {
		return fail(c, "Could not add image", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Image added",
		"image":   img,
	})
}

// HandleDeleteSaleItemImage removes one image by its own ID.
func (h *AdminHandler) HandleDeleteSaleItemImage(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteSaleItemImage(c.Params("id"), c.Params("imageID")); err != nil {
		return fail(c, "Could not delete image", err)
	}
	return c.JSON(fiber.Map{"message": "Image deleted"})
}

// AboutRequest represents the request body for the about page.
type AboutRequest struct {
	Photo       string `json:"photo" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// HandleUpdateAbout replaces the about-page content.
func (h *AdminHandler) HandleUpdateAbout(c *fiber.Ctx) error {
	var req AboutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	about, err := h.catalogService.UpdateAbout(req.Photo, req.Description)
	if err != nil {
		return fail(c, "Could not update about content", err)
	}
	return c.JSON(fiber.Map{
		"message": "About info updated",
		"about":   about,
	})
}

// HandleListCoupons returns every coupon, active or not.
func (h *AdminHandler) HandleListCoupons(c *fiber.Ctx) error {
	coupons, err := h.couponService.GetAll()
	if err != nil {
		return fail(c, "Could not list coupons", err)
	}
	return c.JSON(coupons)
}

// CouponRequest represents the request body for creating a coupon.
type CouponRequest struct {
	Code     string `json:"code" validate:"required,min=2,max=64"`
	Discount int    `json:"discount" validate:"required,gt=0,lte=100"`
}

// HandleAddCoupon creates a coupon; duplicate codes are a conflict.
func (h *AdminHandler) HandleAddCoupon(c *fiber.Ctx) error {
	var req CouponRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	coupon, err := h.couponService.Add(req.Code, req.Discount)
	if err != nil {
		return fail(c, "Could not add coupon", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Coupon added",
		"coupon":  coupon,
	})
}

// HandleDeleteCoupon removes a coupon.
func (h *AdminHandler) HandleDeleteCoupon(c *fiber.Ctx) error {
	if err := h.couponService.Delete(c.Params("id")); err != nil {
		return fail(c, "Could not delete coupon", err)
	}
	return c.JSON(fiber.Map{"message": "Coupon deleted"})
}

// HandleListSettings returns the full settings history, newest first.
func (h *AdminHandler) HandleListSettings(c *fiber.Ctx) error {
	settings, err := h.settingService.History()
	if err != nil {
		return fail(c, "Could not list settings", err)
	}
	return c.JSON(settings)
}

// SettingRequest represents the request body for saving settings.
type SettingRequest struct {
	MarqueeText string `json:"marquee_text"`
	ShowMarquee bool   `json:"show_marquee"`
	PopupText   string `json:"popup_text"`
	ShowPopup   bool   `json:"show_popup"`
}

// HandleSaveSetting appends a new settings entry to the history.
func (h *AdminHandler) HandleSaveSetting(c *fiber.Ctx) error {
	var req SettingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if req.MarqueeText == "" && req.PopupText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "At least one of marquee_text or popup_text is required",
		})
	}

	setting := &models.HomepageSetting{
		MarqueeText: req.MarqueeText,
		ShowMarquee: req.ShowMarquee,
		PopupText:   req.PopupText,
		ShowPopup:   req.ShowPopup,
	}
	if err := h.settingService.Save(setting); err != nil {
		return fail(c, "Could not save setting", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Setting saved",
		"setting": setting,
	})
}

// HandleDeleteSetting removes one settings history entry.
func (h *AdminHandler) HandleDeleteSetting(c *fiber.Ctx) error {
	if err := h.settingService.Delete(c.Params("id")); err != nil {
		return fail(c, "Could not delete setting", err)
	}
	return c.JSON(fiber.Map{"message": "Setting deleted"})
}
