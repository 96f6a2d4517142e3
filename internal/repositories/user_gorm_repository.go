package repositories

import (
	"errors"
	"fmt"

	"artshop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by email. Children are not loaded; this is
// the hot path for authentication.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with email %s: %w", email, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// GetByID retrieves a user with addresses, orders and used coupons loaded.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.
		Preload("Addresses").
		Preload("Orders.Items").
		Preload("Orders").
		Preload("UsedCoupons").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &user, nil
}

// GetAll retrieves all users without their children, for the admin list.
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

// Update saves the mutable top-level user fields.
func (r *GORMUserRepository) Update(user *models.User) error {
	res := r.db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"password":    user.Password,
		"is_verified": user.IsVerified,
		"name":        user.Name,
		"phone":       user.Phone,
		"profile_pic": user.ProfilePic,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with ID %s: %w", user.ID, models.ErrNotFound)
	}
	return nil
}

// Delete removes the user together with all owned rows. The explicit
// transaction keeps the cascade intact on stores without enforced foreign
// keys (the in-memory SQLite used in tests).
func (r *GORMUserRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&models.Order{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("order_id IN (?)", sub).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return fmt.Errorf("failed to delete orders: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Address{}).Error; err != nil {
			return fmt.Errorf("failed to delete addresses: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UsedCoupon{}).Error; err != nil {
			return fmt.Errorf("failed to delete used coupons: %w", err)
		}
		res := tx.Delete(&models.User{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("user with ID %s: %w", id, models.ErrNotFound)
		}
		return nil
	})
}

// RecordUsedCoupon marks a coupon code as used by a user. Re-recording the
// same code is a no-op thanks to the (user_id, code) unique index.
func (r *GORMUserRepository) RecordUsedCoupon(userID, code string) error {
	row := models.UsedCoupon{UserID: userID, Code: code}
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to record used coupon %s: %w", code, err)
	}
	return nil
}

// AddAddress appends a new address for its user.
func (r *GORMUserRepository) AddAddress(address *models.Address) error {
	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	if err := r.db.Create(address).Error; err != nil {
		return fmt.Errorf("failed to add address: %w", err)
	}
	return nil
}

// UpdateAddress replaces the fields of one address, scoped to its owner.
func (r *GORMUserRepository) UpdateAddress(address *models.Address) error {
	res := r.db.Model(&models.Address{}).
		Where("id = ? AND user_id = ?", address.ID, address.UserID).
		Updates(map[string]interface{}{
			"name":         address.Name,
			"phone":        address.Phone,
			"full_address": address.FullAddress,
			"city":         address.City,
			"state":        address.State,
			"pincode":      address.Pincode,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("address with ID %s: %w", address.ID, models.ErrNotFound)
	}
	return nil
}

// DeleteAddress removes one address, scoped to its owner.
func (r *GORMUserRepository) DeleteAddress(userID, addressID string) error {
	res := r.db.Where("id = ? AND user_id = ?", addressID, userID).Delete(&models.Address{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("address with ID %s: %w", addressID, models.ErrNotFound)
	}
	return nil
}

// ListAddresses returns the user's addresses, oldest first.
func (r *GORMUserRepository) ListAddresses(userID string) ([]models.Address, error) {
	var addresses []models.Address
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&addresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}
