// Package pricing computes item and order amounts. Prices are whole
// currency units; the only rounding point is the catalog offer applied to
// a single item, and everything downstream sums already-rounded values.
package pricing

import (
	"math"

	"artshop/internal/models"
)

// DefaultDeliveryCharge is the flat charge added to every order total.
const DefaultDeliveryCharge = 80

// DiscountedPrice applies a catalog-level percentage offer to a base price
// and rounds to the nearest whole currency unit. Offers outside [0,100]
// are clamped.
func DiscountedPrice(price float64, offer int) float64 {
	if offer < 0 {
		offer = 0
	}
	if offer > 100 {
		offer = 100
	}
	return math.Round(price - price*float64(offer)/100)
}

// Subtotal sums the stored prices of the given line items. The stored
// price is already discount-adjusted at add-to-cart time, so no
// re-discounting happens here.
func Subtotal(items []models.OrderItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price
	}
	return sum
}

// CouponDiscount is the amount a percentage coupon takes off a subtotal.
func CouponDiscount(subtotal float64, percent int) float64 {
	if percent <= 0 {
		return 0
	}
	return subtotal * float64(percent) / 100
}

// FinalTotal is the amount charged at checkout: the discounted subtotal,
// floored at zero, plus the delivery charge.
func FinalTotal(subtotal, discount, deliveryCharge float64) float64 {
	return math.Max(subtotal-discount, 0) + deliveryCharge
}
