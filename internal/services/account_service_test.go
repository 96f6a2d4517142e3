package services_test

import (
	"testing"

	"artshop/internal/models"
	"artshop/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestAccountService_UpdateProfile(t *testing.T) {
	mockRepo := new(MockUserRepository)
	accountService := services.NewAccountService(mockRepo)

	user := &models.User{ID: "user-1", Name: "Old Name", Phone: "111", ProfilePic: "pic.jpg"}

	// Empty fields keep their stored values.
	mockRepo.On("GetByID", "user-1").Return(user, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(u *models.User) bool {
		return u.Name == "New Name" && u.Phone == "111" && u.ProfilePic == "pic.jpg"
	})).Return(nil).Once()

	err := accountService.UpdateProfile("user-1", "New Name", "", "")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAccountService_ChangePassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	accountService := services.NewAccountService(mockRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-1", Password: string(hashed)}

	// Wrong current password is rejected without an update.
	mockRepo.On("GetByID", "user-1").Return(user, nil).Once()
	err := accountService.ChangePassword("user-1", "wrong", "newpassword")
	assert.ErrorIs(t, err, models.ErrCredentials)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)

	// Correct current password stores the new hash.
	mockRepo.On("GetByID", "user-1").Return(user, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(u *models.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newpassword")) == nil
	})).Return(nil).Once()

	err = accountService.ChangePassword("user-1", "correct", "newpassword")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAccountService_Addresses(t *testing.T) {
	mockRepo := new(MockUserRepository)
	accountService := services.NewAccountService(mockRepo)

	fields := models.AddressFields{
		Name:        "Buyer",
		Phone:       "9999999999",
		FullAddress: "12 Lane",
		City:        "Kochi",
		State:       "Kerala",
		Pincode:     "682001",
	}

	// Adding stamps the owner onto the row.
	mockRepo.On("AddAddress", mock.MatchedBy(func(a *models.Address) bool {
		return a.UserID == "user-1" && a.FullAddress == "12 Lane"
	})).Return(nil).Once()

	address, err := accountService.AddAddress("user-1", fields)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", address.UserID)

	// Updating addresses the row by its own ID, scoped to the owner.
	mockRepo.On("UpdateAddress", mock.MatchedBy(func(a *models.Address) bool {
		return a.ID == "addr-1" && a.UserID == "user-1"
	})).Return(nil).Once()
	err = accountService.UpdateAddress("user-1", "addr-1", fields)
	assert.NoError(t, err)

	mockRepo.On("DeleteAddress", "user-1", "addr-1").Return(nil).Once()
	err = accountService.DeleteAddress("user-1", "addr-1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
