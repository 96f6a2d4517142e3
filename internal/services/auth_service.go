package services

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"artshop/internal/models"
	"artshop/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, email verification, login and the
// password reset flow.
type AuthService struct {
	userRepo      repositories.UserRepository
	otpRepo       repositories.OTPRepository
	notifier      Notifier
	jwtSecret     []byte
	tokenDuration time.Duration
	otpTTL        time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, otpRepo repositories.OTPRepository, notifier Notifier, jwtSecret string, otpTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		otpRepo:       otpRepo,
		notifier:      notifier,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: 24 * time.Hour,
		otpTTL:        otpTTL,
	}
}

// generateCode returns a 6-digit numeric one-time code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an unverified user and mails a verification code. A
// failed mail send is logged but does not undo the registration.
func (s *AuthService) Register(email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, fmt.Errorf("email %s: %w", email, models.ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if err := s.issueCode(email, models.OTPPurposeVerify); err != nil {
		log.Printf("Warning: failed to issue verification code for %s: %v", email, err)
	}
	return user, nil
}

// RegisterAdmin creates a pre-verified admin account.
func (s *AuthService) RegisterAdmin(name, email, phone, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, fmt.Errorf("email %s: %w", email, models.ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:      email,
		Password:   string(hashed),
		Name:       name,
		Phone:      phone,
		IsVerified: true,
		IsAdmin:    true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register admin: %w", err)
	}
	return user, nil
}

// VerifyEmail checks the submitted code and marks the account verified.
func (s *AuthService) VerifyEmail(email, code string) error {
	email = normalizeEmail(email)
	if err := s.checkCode(email, models.OTPPurposeVerify, code); err != nil {
		return err
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	user.IsVerified = true
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}

	if err := s.otpRepo.Delete(email, models.OTPPurposeVerify); err != nil {
		log.Printf("Warning: failed to clear verification code for %s: %v", email, err)
	}
	return nil
}

// Login authenticates a verified user and returns a signed bearer token.
func (s *AuthService) Login(email, password string) (string, error) {
	email = normalizeEmail(email)
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the account exists.
		return "", models.ErrCredentials
	}
	if !user.IsVerified {
		return "", models.ErrNotVerified
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", models.ErrCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenDuration).Unix(),
		"iat":     time.Now().Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a bearer token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// RequestPasswordReset issues a reset code to an existing account.
func (s *AuthService) RequestPasswordReset(email string) error {
	email = normalizeEmail(email)
	if _, err := s.userRepo.GetByEmail(email); err != nil {
		return fmt.Errorf("user %s: %w", email, models.ErrNotFound)
	}
	return s.issueCode(email, models.OTPPurposeReset)
}

// VerifyResetCode checks a reset code without consuming it, so the client
// can gate the new-password form.
func (s *AuthService) VerifyResetCode(email, code string) error {
	return s.checkCode(normalizeEmail(email), models.OTPPurposeReset, code)
}

// ResetPassword consumes a valid reset code and stores the new password.
func (s *AuthService) ResetPassword(email, code, newPassword string) error {
	email = normalizeEmail(email)
	if err := s.checkCode(email, models.OTPPurposeReset, code); err != nil {
		return err
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.otpRepo.Delete(email, models.OTPPurposeReset); err != nil {
		log.Printf("Warning: failed to clear reset code for %s: %v", email, err)
	}
	return nil
}

// issueCode stores a fresh code for (email, purpose) and mails it.
func (s *AuthService) issueCode(email, purpose string) error {
	code, err := generateCode()
	if err != nil {
		return err
	}
	record := &models.OneTimeCode{
		Email:     email,
		Purpose:   purpose,
		Code:      code,
		ExpiresAt: time.Now().Add(s.otpTTL),
	}
	if err := s.otpRepo.Replace(record); err != nil {
		return err
	}
	if err := s.notifier.OneTimeCode(email, code); err != nil {
		log.Printf("Warning: failed to mail one-time code to %s: %v", email, err)
	}
	return nil
}

// checkCode validates a submitted code against the stored record.
func (s *AuthService) checkCode(email, purpose, code string) error {
	record, err := s.otpRepo.Find(email, purpose)
	if err != nil {
		return fmt.Errorf("no code on file for %s: %w", email, models.ErrCodeInvalid)
	}
	if record.Expired(time.Now()) {
		return fmt.Errorf("code for %s expired: %w", email, models.ErrCodeInvalid)
	}
	if record.Code != strings.TrimSpace(code) {
		return fmt.Errorf("code mismatch for %s: %w", email, models.ErrCodeInvalid)
	}
	return nil
}
