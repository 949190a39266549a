package exts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yatube/server/pkg/internal/models"
	"github.com/yatube/server/pkg/internal/services"
)

// EnsureAuthenticated guards handlers behind a resolved, active account.
func EnsureAuthenticated(c *fiber.Ctx) error {
	user, authenticated := c.Locals("user").(models.Account)
	if !authenticated {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	if _, err := services.RequireActiveAccount(user); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return nil
}
