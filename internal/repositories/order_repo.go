package repositories

import "artshop/internal/models"

// OrderRepository defines the interface for order data access. Orders are
// always addressed by (owner ID, order ID), never by list position.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(userID, orderID string) (*models.Order, error)
	ListByUser(userID string) ([]models.Order, error)
	ListAll() ([]models.AdminOrder, error)
	UpdateStatus(userID, orderID, status string) error
	Cancel(userID, orderID string) error
	Delete(userID, orderID string) error
}
