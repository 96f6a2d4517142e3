package handlers

import (
	"log"

	"artshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for registration, verification, login
// and the password reset flow.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the public authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/verify", h.HandleVerify)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/register-admin", h.HandleRegisterAdmin)
	authRoutes.Post("/send-reset-code", h.HandleSendResetCode)
	authRoutes.Post("/verify-reset-code", h.HandleVerifyResetCode)
	authRoutes.Post("/reset-password", h.HandleResetPassword)
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// HandleRegister creates an unverified account and mails a one-time code.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	user, err := h.authService.Register(req.Email, req.Password)
	if err != nil {
		log.Printf("Error registering user: %v", err)
		return fail(c, "Registration failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created. Verification code sent to email.",
		"user_id": user.ID,
	})
}

// VerifyRequest represents the request body for email verification.
type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// HandleVerify marks an account verified when the submitted code matches.
func (h *AuthHandler) HandleVerify(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	if err := h.authService.VerifyEmail(req.Email, req.Code); err != nil {
		return fail(c, "Verification failed", err)
	}
	return c.JSON(fiber.Map{"message": "Email verified successfully"})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates a verified user and issues a bearer token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("Error during login for %s: %v", req.Email, err)
		return fail(c, "Authentication failed", err)
	}
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}

// AdminRegisterRequest represents the request body for admin registration.
type AdminRegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Password string `json:"password" validate:"required,min=6"`
}

// HandleRegisterAdmin creates a pre-verified admin account.
func (h *AuthHandler) HandleRegisterAdmin(c *fiber.Ctx) error {
	var req AdminRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	user, err := h.authService.RegisterAdmin(req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		return fail(c, "Admin registration failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Admin registered successfully",
		"user_id": user.ID,
	})
}

// ResetCodeRequest represents the request body for starting a reset.
type ResetCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// HandleSendResetCode mails a password reset code to an existing account.
func (h *AuthHandler) HandleSendResetCode(c *fiber.Ctx) error {
	var req ResetCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		return fail(c, "Failed to send reset code", err)
	}
	return c.JSON(fiber.Map{"message": "Reset code sent to email"})
}

// HandleVerifyResetCode checks a reset code without consuming it.
func (h *AuthHandler) HandleVerifyResetCode(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	if err := h.authService.VerifyResetCode(req.Email, req.Code); err != nil {
		return fail(c, "Invalid code", err)
	}
	return c.JSON(fiber.Map{"message": "Code verified"})
}

// ResetPasswordRequest represents the request body for finishing a reset.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,len=6"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// HandleResetPassword consumes a valid reset code and stores the new
// password.
func (h *AuthHandler) HandleResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	if err := h.authService.ResetPassword(req.Email, req.Code, req.NewPassword); err != nil {
		return fail(c, "Password reset failed", err)
	}
	return c.JSON(fiber.Map{"message": "Password reset successful"})
}
