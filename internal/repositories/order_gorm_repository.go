package repositories

import (
	"errors"
	"fmt"

	"artshop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create persists a new order snapshot with its items.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves one order with its items, scoped to the owner.
func (r *GORMOrderRepository) GetByID(userID, orderID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").
		First(&order, "id = ? AND user_id = ?", orderID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", orderID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	return &order, nil
}

// ListByUser returns a user's orders, newest first.
func (r *GORMOrderRepository) ListByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("placed_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListAll returns every order joined with its owner, newest first.
func (r *GORMOrderRepository) ListAll() ([]models.AdminOrder, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Order("placed_at DESC").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list all orders: %w", err)
	}

	var users []models.User
	if err := r.db.Select("id", "email", "name").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to load order owners: %w", err)
	}
	owners := make(map[string]models.User, len(users))
	for _, u := range users {
		owners[u.ID] = u
	}

	out := make([]models.AdminOrder, 0, len(orders))
	for _, o := range orders {
		owner := owners[o.UserID]
		out = append(out, models.AdminOrder{
			Order:     o,
			UserEmail: owner.Email,
			UserName:  owner.Name,
		})
	}
	return out, nil
}

// UpdateStatus sets the status label only; the cancellation flag is
// untouched so an admin marking Delivered leaves is_cancelled false.
func (r *GORMOrderRepository) UpdateStatus(userID, orderID, status string) error {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND user_id = ?", orderID, userID).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", orderID, models.ErrNotFound)
	}
	return nil
}

// Cancel sets the Cancelled status together with the cancellation flag.
func (r *GORMOrderRepository) Cancel(userID, orderID string) error {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND user_id = ?", orderID, userID).
		Updates(map[string]interface{}{
			"status":       models.StatusCancelled,
			"is_cancelled": true,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to cancel order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", orderID, models.ErrNotFound)
	}
	return nil
}

// Delete permanently removes an order and its items. No tombstone is kept.
func (r *GORMOrderRepository) Delete(userID, orderID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}
		res := tx.Where("id = ? AND user_id = ?", orderID, userID).Delete(&models.Order{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete order: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("order with ID %s: %w", orderID, models.ErrNotFound)
		}
		return nil
	})
}
