package models

import "time"

// Order status labels. The admin path may set any of these directly; only
// the user cancel path checks for a terminal state first.
const (
	StatusPlaced     = "Order Placed"
	StatusPlacedCOD  = "Order Placed - COD"
	StatusPlacedPaid = "Order Placed - Paid"
	StatusPacked     = "Packed"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

var orderStatuses = map[string]bool{
	StatusPlaced:     true,
	StatusPlacedCOD:  true,
	StatusPlacedPaid: true,
	StatusPacked:     true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

// ValidOrderStatus reports whether s is one of the fixed status labels.
func ValidOrderStatus(s string) bool {
	return orderStatuses[s]
}

// TerminalOrderStatus reports whether s is Delivered or Cancelled.
func TerminalOrderStatus(s string) bool {
	return s == StatusDelivered || s == StatusCancelled
}

// OrderItem is a single line item frozen into an order at placement time.
// Price is the discount-adjusted unit price stored on the cart item.
type OrderItem struct {
	ID      string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID string  `json:"-" gorm:"index;type:varchar(36)"`
	Title   string  `json:"title"`
	Price   float64 `json:"price"`
	Image   string  `json:"image"`
}

// Order is a frozen snapshot created at checkout. Items, total and the
// address snapshot are immutable afterwards; only status, the cancellation
// flag and deletion are mutable.
type Order struct {
	ID            string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID        string        `json:"user_id" gorm:"index;type:varchar(36)"`
	Items         []OrderItem   `json:"items" gorm:"constraint:OnDelete:CASCADE"`
	Total         float64       `json:"total"`
	Status        string        `json:"status"`
	PaymentMethod string        `json:"payment_method"`
	CouponCode    string        `json:"coupon_code,omitempty"`
	Shipping      AddressFields `json:"address" gorm:"embedded;embeddedPrefix:ship_"`
	PlacedAt      time.Time     `json:"placed_at"`
	DeliveryDate  time.Time     `json:"delivery_date"`
	IsCancelled   bool          `json:"is_cancelled"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// AdminOrder is an order joined with its owner, for the back-office list.
type AdminOrder struct {
	Order
	UserEmail string `json:"user_email"`
	UserName  string `json:"user_name"`
}
