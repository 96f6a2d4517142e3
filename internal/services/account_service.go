package services

import (
	"fmt"

	"artshop/internal/models"
	"artshop/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AccountService handles profile, address and account administration.
type AccountService struct {
	userRepo repositories.UserRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(userRepo repositories.UserRepository) *AccountService {
	return &AccountService{
		userRepo: userRepo,
	}
}

// Profile returns the full user record with addresses, orders and used
// coupons loaded. The password hash never serializes.
func (s *AccountService) Profile(userID string) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

// UpdateProfile saves name, phone and picture reference. Empty fields keep
// their current values, matching the storefront's partial-save form.
func (s *AccountService) UpdateProfile(userID, name, phone, profilePic string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if name != "" {
		user.Name = name
	}
	if phone != "" {
		user.Phone = phone
	}
	if profilePic != "" {
		user.ProfilePic = profilePic
	}
	return s.userRepo.Update(user)
}

// ChangePassword verifies the current password before storing the new one.
func (s *AccountService) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password mismatch: %w", models.ErrCredentials)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	return s.userRepo.Update(user)
}

// AddAddress appends a new address for the user.
func (s *AccountService) AddAddress(userID string, fields models.AddressFields) (*models.Address, error) {
	address := &models.Address{
		UserID:        userID,
		AddressFields: fields,
	}
	if err := s.userRepo.AddAddress(address); err != nil {
		return nil, err
	}
	return address, nil
}

// UpdateAddress replaces one address, addressed by its own ID.
func (s *AccountService) UpdateAddress(userID, addressID string, fields models.AddressFields) error {
	address := &models.Address{
		ID:            addressID,
		UserID:        userID,
		AddressFields: fields,
	}
	return s.userRepo.UpdateAddress(address)
}

// DeleteAddress removes one address, addressed by its own ID.
func (s *AccountService) DeleteAddress(userID, addressID string) error {
	return s.userRepo.DeleteAddress(userID, addressID)
}

// Addresses lists the user's saved addresses.
func (s *AccountService) Addresses(userID string) ([]models.Address, error) {
	return s.userRepo.ListAddresses(userID)
}

// ListUsers returns all accounts for the back office.
func (s *AccountService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// DeleteUser removes an account and everything it owns: orders, addresses
// and used-coupon records go with it.
func (s *AccountService) DeleteUser(userID string) error {
	return s.userRepo.Delete(userID)
}
