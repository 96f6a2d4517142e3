package handlers

import (
	"log"

	"artshop/internal/models"
	"artshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for the authenticated user's orders.
type OrderHandler struct {
	orderService *services.OrderService
	validate     *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the order routes. The caller applies the
// authentication middleware.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Post("/", h.HandlePlaceOrder)
	orderRoutes.Put("/:id/cancel", h.HandleCancelOrder)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)
}

// OrderItemRequest is one line item submitted at checkout. Price is the
// discount-adjusted unit price captured at add-to-cart time.
type OrderItemRequest struct {
	Title string  `json:"title" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
	Image string  `json:"image"`
}

// PlaceOrderRequest represents the checkout submission.
type PlaceOrderRequest struct {
	Items         []OrderItemRequest   `json:"items" validate:"required,min=1,dive"`
	Address       models.AddressFields `json:"address" validate:"required"`
	PaymentMethod string               `json:"payment_method" validate:"required,oneof=COD UPI CARD"`
	Coupon        string               `json:"coupon"`
}

// HandlePlaceOrder creates the order snapshot and sends the confirmation.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.OrderItem{
			Title: it.Title,
			Price: it.Price,
			Image: it.Image,
		})
	}

	order, err := h.orderService.Place(currentUserID(c), services.PlaceOrderInput{
		Items:         items,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		CouponCode:    req.Coupon,
	})
	if err != nil {
		log.Printf("Error placing order: %v", err)
		return fail(c, "Could not place order", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed and confirmation sent",
		"order":   order,
	})
}

// HandleListOrders returns the caller's orders, newest first.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.ListForUser(currentUserID(c))
	if err != nil {
		return fail(c, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// HandleCancelOrder cancels the caller's own non-terminal order.
func (h *OrderHandler) HandleCancelOrder(c *fiber.Ctx) error {
	if err := h.orderService.Cancel(currentUserID(c), c.Params("id")); err != nil {
		return fail(c, "Could not cancel order", err)
	}
	return c.JSON(fiber.Map{"message": "Order cancelled successfully"})
}

// HandleDeleteOrder permanently removes the caller's own cancelled order.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	if err := h.orderService.Delete(currentUserID(c), c.Params("id"), false); err != nil {
		return fail(c, "Could not delete order", err)
	}
	return c.JSON(fiber.Map{"message": "Order deleted successfully"})
}
