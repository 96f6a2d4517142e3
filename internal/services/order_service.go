package services

import (
	"fmt"
	"log"
	"time"

	"artshop/internal/models"
	"artshop/internal/pricing"
	"artshop/internal/repositories"
	"artshop/pkg/events"
)

// deliveryDays is the fixed gap between placement and expected delivery.
const deliveryDays = 5

// EventPublisher publishes order lifecycle events. *events.Client
// satisfies it; a nil publisher disables publication.
type EventPublisher interface {
	PublishOrderEvent(event events.OrderEvent) error
}

// PlaceOrderInput is everything checkout submits for a new order.
type PlaceOrderInput struct {
	Items         []models.OrderItem
	Address       models.AddressFields
	PaymentMethod string
	CouponCode    string
}

// OrderService handles order placement and the status lifecycle.
type OrderService struct {
	orderRepo      repositories.OrderRepository
	userRepo       repositories.UserRepository
	coupons        *CouponService
	notifier       Notifier
	publisher      EventPublisher
	deliveryCharge float64
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, userRepo repositories.UserRepository, coupons *CouponService, notifier Notifier, publisher EventPublisher, deliveryCharge float64) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		userRepo:       userRepo,
		coupons:        coupons,
		notifier:       notifier,
		publisher:      publisher,
		deliveryCharge: deliveryCharge,
	}
}

// Place creates an order snapshot: total computed once from the submitted
// items and an optional coupon, never recomputed later. A used coupon is
// recorded idempotently, so retrying placement with the same code cannot
// duplicate the entry.
func (s *OrderService) Place(userID string, input PlaceOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("an order needs at least one item")
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	subtotal := pricing.Subtotal(input.Items)

	var discount float64
	couponCode := ""
	if input.CouponCode != "" {
		coupon, err := s.coupons.Validate(input.CouponCode, user.UsedCouponCodes())
		if err != nil {
			return nil, err
		}
		discount = pricing.CouponDiscount(subtotal, coupon.Discount)
		couponCode = coupon.Code
	}

	now := time.Now()
	order := &models.Order{
		UserID:        userID,
		Items:         input.Items,
		Total:         pricing.FinalTotal(subtotal, discount, s.deliveryCharge),
		Status:        placementStatus(input.PaymentMethod),
		PaymentMethod: input.PaymentMethod,
		CouponCode:    couponCode,
		Shipping:      input.Address,
		PlacedAt:      now,
		DeliveryDate:  now.AddDate(0, 0, deliveryDays),
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	if couponCode != "" {
		if err := s.userRepo.RecordUsedCoupon(userID, couponCode); err != nil {
			log.Printf("Warning: failed to record used coupon %s for user %s: %v", couponCode, userID, err)
		}
	}

	s.publish(events.OrderPlaced, user, order)
	if err := s.notifier.OrderConfirmation(user.Email, order.ID, order.DeliveryDate); err != nil {
		log.Printf("Warning: failed to send order confirmation for %s: %v", order.ID, err)
	}
	return order, nil
}

// Cancel lets the owner cancel a non-terminal order. Cancellation is
// final.
func (s *OrderService) Cancel(userID, orderID string) error {
	order, err := s.orderRepo.GetByID(userID, orderID)
	if err != nil {
		return err
	}
	if models.TerminalOrderStatus(order.Status) {
		return fmt.Errorf("order %s is %s: %w", orderID, order.Status, models.ErrOrderTerminal)
	}

	if err := s.orderRepo.Cancel(userID, orderID); err != nil {
		return err
	}
	order.Status = models.StatusCancelled
	order.IsCancelled = true

	s.notifyStatus(userID, order)
	return nil
}

// UpdateStatus is the admin path: any label from the fixed set may be
// applied directly, with no forward-only constraint. Terminal labels
// trigger a notification.
func (s *OrderService) UpdateStatus(userID, orderID, status string) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("status %q: %w", status, models.ErrBadStatus)
	}

	order, err := s.orderRepo.GetByID(userID, orderID)
	if err != nil {
		return err
	}
	if err := s.orderRepo.UpdateStatus(userID, orderID, status); err != nil {
		return err
	}
	order.Status = status

	if models.TerminalOrderStatus(status) {
		s.notifyStatus(userID, order)
	}
	return nil
}

// Delete permanently removes an order. Owners may only delete orders they
// have already cancelled; admins may delete any order.
func (s *OrderService) Delete(userID, orderID string, asAdmin bool) error {
	order, err := s.orderRepo.GetByID(userID, orderID)
	if err != nil {
		return err
	}
	if !asAdmin && !order.IsCancelled {
		return fmt.Errorf("only cancelled orders can be deleted: %w", models.ErrForbidden)
	}
	return s.orderRepo.Delete(userID, orderID)
}

// ListForUser returns the owner's orders, newest first.
func (s *OrderService) ListForUser(userID string) ([]models.Order, error) {
	return s.orderRepo.ListByUser(userID)
}

// ListAll returns every order with its owner, for the back office.
func (s *OrderService) ListAll() ([]models.AdminOrder, error) {
	return s.orderRepo.ListAll()
}

// notifyStatus mails the owner about a terminal transition and publishes
// the status event. Both are best effort.
func (s *OrderService) notifyStatus(userID string, order *models.Order) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		log.Printf("Warning: failed to load user %s for order notification: %v", userID, err)
		return
	}
	s.publish(events.OrderStatusChanged, user, order)
	if err := s.notifier.OrderStatus(user.Email, user.Name, order.ID, order.Status); err != nil {
		log.Printf("Warning: failed to send status notice for order %s: %v", order.ID, err)
	}
}

func (s *OrderService) publish(kind string, user *models.User, order *models.Order) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishOrderEvent(events.OrderEvent{
		Kind:      kind,
		OrderID:   order.ID,
		UserID:    user.ID,
		UserEmail: user.Email,
		UserName:  user.Name,
		Status:    order.Status,
		Total:     order.Total,
		At:        time.Now(),
	})
	if err != nil {
		log.Printf("Warning: failed to publish %s event for order %s: %v", kind, order.ID, err)
	}
}

// placementStatus derives the initial status label from the payment
// method tag.
func placementStatus(paymentMethod string) string {
	switch paymentMethod {
	case "COD":
		return models.StatusPlacedCOD
	case "UPI", "CARD":
		return models.StatusPlacedPaid
	default:
		return models.StatusPlaced
	}
}
