package repositories

import "artshop/internal/models"

// UserRepository defines the interface for user data access, including the
// identifier-addressed address sub-collection and used-coupon tracking.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	Delete(id string) error

	RecordUsedCoupon(userID, code string) error

	AddAddress(address *models.Address) error
	UpdateAddress(address *models.Address) error
	DeleteAddress(userID, addressID string) error
	ListAddresses(userID string) ([]models.Address, error)
}
