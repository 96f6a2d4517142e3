package handlers

import (
	"artshop/internal/models"
	"artshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles HTTP requests for the authenticated user's own
// profile, password and addresses.
type AccountHandler struct {
	accountService *services.AccountService
	validate       *validator.Validate
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the account routes. The caller applies the
// authentication middleware.
func (h *AccountHandler) RegisterRoutes(router fiber.Router) {
	accountRoutes := router.Group("/account")
	accountRoutes.Get("/profile", h.HandleGetProfile)
	accountRoutes.Put("/profile", h.HandleUpdateProfile)
	accountRoutes.Put("/password", h.HandleChangePassword)
	accountRoutes.Get("/addresses", h.HandleListAddresses)
	accountRoutes.Post("/addresses", h.HandleAddAddress)
	accountRoutes.Put("/addresses/:id", h.HandleUpdateAddress)
	accountRoutes.Delete("/addresses/:id", h.HandleDeleteAddress)
}

// HandleGetProfile returns the caller's full profile.
func (h *AccountHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.accountService.Profile(currentUserID(c))
	if err != nil {
		return fail(c, "Could not load profile", err)
	}
	return c.JSON(user)
}

// UpdateProfileRequest represents the request body for a profile save.
// Empty fields keep their stored values.
type UpdateProfileRequest struct {
	Name       string `json:"name" validate:"omitempty,max=100"`
	Phone      string `json:"phone" validate:"omitempty,max=30"`
	ProfilePic string `json:"profile_pic" validate:"omitempty,url"`
}

// HandleUpdateProfile saves name, phone and picture reference.
func (h *AccountHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	if err := h.accountService.UpdateProfile(currentUserID(c), req.Name, req.Phone, req.ProfilePic); err != nil {
		return fail(c, "Could not update profile", err)
	}
	return c.JSON(fiber.Map{"message": "Profile updated"})
}

// ChangePasswordRequest represents the request body for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// HandleChangePassword verifies the current password before accepting the
// new one.
func (h *AccountHandler) HandleChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	if err := h.accountService.ChangePassword(currentUserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		return fail(c, "Could not change password", err)
	}
	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}

// HandleListAddresses returns the caller's saved addresses.
func (h *AccountHandler) HandleListAddresses(c *fiber.Ctx) error {
	addresses, err := h.accountService.Addresses(currentUserID(c))
	if err != nil {
		return fail(c, "Could not list addresses", err)
	}
	return c.JSON(addresses)
}

// HandleAddAddress appends a new address.
func (h *AccountHandler) HandleAddAddress(c *fiber.Ctx) error {
	var fields models.AddressFields
	if err := c.BodyParser(&fields); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(fields); err != nil {
		return validationFail(c, err)
	}

	address, err := h.accountService.AddAddress(currentUserID(c), fields)
	if err != nil {
		return fail(c, "Could not save address", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Address saved",
		"address": address,
	})
}

// HandleUpdateAddress replaces one address by its ID.
func (h *AccountHandler) HandleUpdateAddress(c *fiber.Ctx) error {
	var fields models.AddressFields
	if err := c.BodyParser(&fields); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(fields); err != nil {
		return validationFail(c, err)
	}

	if err := h.accountService.UpdateAddress(currentUserID(c), c.Params("id"), fields); err != nil {
		return fail(c, "Could not update address", err)
	}
	return c.JSON(fiber.Map{"message": "Address updated"})
}

// HandleDeleteAddress removes one address by its ID.
func (h *AccountHandler) HandleDeleteAddress(c *fiber.Ctx) error {
	if err := h.accountService.DeleteAddress(currentUserID(c), c.Params("id")); err != nil {
		return fail(c, "Could not delete address", err)
	}
	return c.JSON(fiber.Map{"message": "Address deleted"})
}
