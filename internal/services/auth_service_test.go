package services_test

import (
	"fmt"
	"testing"
	"time"

	"artshop/internal/models"
	"artshop/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) RecordUsedCoupon(userID, code string) error {
	args := m.Called(userID, code)
	return args.Error(0)
}

func (m *MockUserRepository) AddAddress(address *models.Address) error {
	args := m.Called(address)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAddress(address *models.Address) error {
	args := m.Called(address)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteAddress(userID, addressID string) error {
	args := m.Called(userID, addressID)
	return args.Error(0)
}

func (m *MockUserRepository) ListAddresses(userID string) ([]models.Address, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Address), args.Error(1)
}

// MockOTPRepository is a mock implementation of repositories.OTPRepository
type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) Replace(code *models.OneTimeCode) error {
	args := m.Called(code)
	return args.Error(0)
}

func (m *MockOTPRepository) Find(email, purpose string) (*models.OneTimeCode, error) {
	args := m.Called(email, purpose)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OneTimeCode), args.Error(1)
}

func (m *MockOTPRepository) Delete(email, purpose string) error {
	args := m.Called(email, purpose)
	return args.Error(0)
}

func (m *MockOTPRepository) PurgeExpired(now time.Time) (int64, error) {
	args := m.Called(now)
	return args.Get(0).(int64), args.Error(1)
}

// MockNotifier is a mock implementation of services.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) OneTimeCode(to, code string) error {
	args := m.Called(to, code)
	return args.Error(0)
}

func (m *MockNotifier) OrderConfirmation(to, orderID string, deliveryDate time.Time) error {
	args := m.Called(to, orderID, deliveryDate)
	return args.Error(0)
}

func (m *MockNotifier) OrderStatus(to, name, orderID, status string) error {
	args := m.Called(to, name, orderID, status)
	return args.Error(0)
}

const testJWTSecret = "test_jwt_secret"

func newAuthService(userRepo *MockUserRepository, otpRepo *MockOTPRepository, notifier *MockNotifier) *services.AuthService {
	return services.NewAuthService(userRepo, otpRepo, notifier, testJWTSecret, 10*time.Minute)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockOTP := new(MockOTPRepository)
	mockNotifier := new(MockNotifier)
	authService := newAuthService(mockRepo, mockOTP, mockNotifier)

	// Successful registration stores a code and mails it.
	mockRepo.On("GetByEmail", "test@example.com").Return(nil, fmt.Errorf("not found")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	mockOTP.On("Replace", mock.AnythingOfType("*models.OneTimeCode")).Return(nil).Once()
	mockNotifier.On("OneTimeCode", "test@example.com", mock.AnythingOfType("string")).Return(nil).Once()

	user, err := authService.Register("Test@Example.com ", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email)
	assert.False(t, user.IsVerified)
	mockRepo.AssertExpectations(t)
	mockOTP.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)

	// Email already registered.
	mockRepo.On("GetByEmail", "test@example.com").Return(&models.User{ID: "user-1"}, nil).Once()
	_, err = authService.Register("test@example.com", "password123")
	assert.Error(t, err)
	assert.ErrorIs(t, err, models.ErrConflict)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_VerifyEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockOTP := new(MockOTPRepository)
	mockNotifier := new(MockNotifier)
	authService := newAuthService(mockRepo, mockOTP, mockNotifier)

	stored := &models.OneTimeCode{
		Email:     "test@example.com",
		Purpose:   models.OTPPurposeVerify,
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	// Wrong code.
	mockOTP.On("Find", "test@example.com", models.OTPPurposeVerify).Return(stored, nil).Once()
	err := authService.VerifyEmail("test@example.com", "654321")
	assert.ErrorIs(t, err, models.ErrCodeInvalid)

	// Expired code.
	expired := &models.OneTimeCode{
		Email:     "test@example.com",
		Purpose:   models.OTPPurposeVerify,
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	mockOTP.On("Find", "test@example.com", models.OTPPurposeVerify).Return(expired, nil).Once()
	err = authService.VerifyEmail("test@example.com", "123456")
	assert.ErrorIs(t, err, models.ErrCodeInvalid)

	// Matching code marks the account verified and clears the record.
	user := &models.User{ID: "user-1", Email: "test@example.com"}
	mockOTP.On("Find", "test@example.com", models.OTPPurposeVerify).Return(stored, nil).Once()
	mockRepo.On("GetByEmail", "test@example.com").Return(user, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(u *models.User) bool {
		return u.IsVerified
	})).Return(nil).Once()
	mockOTP.On("Delete", "test@example.com", models.OTPPurposeVerify).Return(nil).Once()

	err = authService.VerifyEmail("test@example.com", "123456")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockOTP.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockOTP := new(MockOTPRepository)
	mockNotifier := new(MockNotifier)
	authService := newAuthService(mockRepo, mockOTP, mockNotifier)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:         "user-123",
		Email:      "test@example.com",
		Password:   string(hashedPassword),
		IsVerified: true,
	}

	// Successful login returns a signed token with the expected claims.
	mockRepo.On("GetByEmail", "test@example.com").Return(user, nil).Once()
	token, err := authService.Login("test@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])
	mockRepo.AssertExpectations(t)

	// Unverified account.
	unverified := &models.User{
		ID:       "user-456",
		Email:    "new@example.com",
		Password: string(hashedPassword),
	}
	mockRepo.On("GetByEmail", "new@example.com").Return(unverified, nil).Once()
	_, err = authService.Login("new@example.com", "password123")
	assert.ErrorIs(t, err, models.ErrNotVerified)

	// Wrong password.
	mockRepo.On("GetByEmail", "test@example.com").Return(user, nil).Once()
	_, err = authService.Login("test@example.com", "wrongpassword")
	assert.ErrorIs(t, err, models.ErrCredentials)

	// Unknown account gets the same generic error.
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, fmt.Errorf("not found")).Once()
	_, err = authService.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, models.ErrCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockOTP := new(MockOTPRepository)
	mockNotifier := new(MockNotifier)
	authService := newAuthService(mockRepo, mockOTP, mockNotifier)

	// Valid token.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"email":   "test@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "test@example.com", claims["email"])

	// Garbage token.
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Expired token.
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestAuthService_ResetPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockOTP := new(MockOTPRepository)
	mockNotifier := new(MockNotifier)
	authService := newAuthService(mockRepo, mockOTP, mockNotifier)

	// Requesting a reset for an unknown account fails without issuing.
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, fmt.Errorf("not found")).Once()
	err := authService.RequestPasswordReset("nobody@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)

	// A valid code replaces the password and clears the record.
	stored := &models.OneTimeCode{
		Email:     "test@example.com",
		Purpose:   models.OTPPurposeReset,
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	user := &models.User{ID: "user-1", Email: "test@example.com", Password: "old-hash"}

	mockOTP.On("Find", "test@example.com", models.OTPPurposeReset).Return(stored, nil).Once()
	mockRepo.On("GetByEmail", "test@example.com").Return(user, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(u *models.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newpassword")) == nil
	})).Return(nil).Once()
	mockOTP.On("Delete", "test@example.com", models.OTPPurposeReset).Return(nil).Once()

	err = authService.ResetPassword("test@example.com", "123456", "newpassword")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockOTP.AssertExpectations(t)
}
