package services_test

import (
	"fmt"
	"testing"

	"artshop/internal/models"
	"artshop/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCouponRepository is a mock implementation of repositories.CouponRepository
type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) Create(coupon *models.Coupon) error {
	args := m.Called(coupon)
	return args.Error(0)
}

func (m *MockCouponRepository) GetByCode(code string) (*models.Coupon, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Coupon), args.Error(1)
}

func (m *MockCouponRepository) GetAll() ([]models.Coupon, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Coupon), args.Error(1)
}

func (m *MockCouponRepository) ListActive() ([]models.Coupon, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Coupon), args.Error(1)
}

func (m *MockCouponRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestCouponService_Validate(t *testing.T) {
	mockRepo := new(MockCouponRepository)
	couponService := services.NewCouponService(mockRepo)

	active := &models.Coupon{ID: "c-1", Code: "ART10", Discount: 10, IsActive: true}

	// Lookup is by normalized code.
	mockRepo.On("GetByCode", "ART10").Return(active, nil).Once()
	coupon, err := couponService.Validate("  art10 ", nil)
	assert.NoError(t, err)
	assert.Equal(t, "ART10", coupon.Code)
	assert.Equal(t, 10, coupon.Discount)
	mockRepo.AssertExpectations(t)

	// Unknown code.
	mockRepo.On("GetByCode", "NOPE").Return(nil, fmt.Errorf("not found")).Once()
	_, err = couponService.Validate("nope", nil)
	assert.ErrorIs(t, err, models.ErrCouponInvalid)

	// Inactive coupon.
	inactive := &models.Coupon{ID: "c-2", Code: "OLD20", Discount: 20}
	mockRepo.On("GetByCode", "OLD20").Return(inactive, nil).Once()
	_, err = couponService.Validate("OLD20", nil)
	assert.ErrorIs(t, err, models.ErrCouponInvalid)

	// Empty code never hits the repository.
	_, err = couponService.Validate("   ", nil)
	assert.ErrorIs(t, err, models.ErrCouponInvalid)

	// Already used by this account.
	mockRepo.On("GetByCode", "ART10").Return(active, nil).Once()
	_, err = couponService.Validate("ART10", []string{"WELCOME5", "ART10"})
	assert.ErrorIs(t, err, models.ErrCouponUsed)
	mockRepo.AssertExpectations(t)
}

func TestCouponService_Add(t *testing.T) {
	mockRepo := new(MockCouponRepository)
	couponService := services.NewCouponService(mockRepo)

	// Code is stored normalized and active.
	mockRepo.On("Create", mock.MatchedBy(func(c *models.Coupon) bool {
		return c.Code == "SUMMER15" && c.Discount == 15 && c.IsActive
	})).Return(nil).Once()
	coupon, err := couponService.Add(" summer15 ", 15)
	assert.NoError(t, err)
	assert.Equal(t, "SUMMER15", coupon.Code)
	mockRepo.AssertExpectations(t)

	// Discount bounds.
	_, err = couponService.Add("BAD", 0)
	assert.Error(t, err)
	_, err = couponService.Add("BAD", 101)
	assert.Error(t, err)

	// Empty code.
	_, err = couponService.Add("   ", 10)
	assert.Error(t, err)

	// Duplicate code surfaces the repository conflict.
	mockRepo.On("Create", mock.AnythingOfType("*models.Coupon")).
		Return(fmt.Errorf("coupon SUMMER15: %w", models.ErrConflict)).Once()
	_, err = couponService.Add("SUMMER15", 15)
	assert.ErrorIs(t, err, models.ErrConflict)
	mockRepo.AssertExpectations(t)
}
