package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yatube/server/pkg/internal/http/exts"
	"github.com/yatube/server/pkg/internal/models"
	"github.com/yatube/server/pkg/internal/services"
)

func createAccount(c *fiber.Ctx) error {
	var data struct {
		Username string `json:"username" validate:"required,max=30"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=4,max=128"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.NewAccount(data.Username, data.Email, data.Password)
	if err != nil {
		if errors.Is(err, services.ErrAccountExists) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(account)
}

func getMyself(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	return c.JSON(user)
}

func deleteMyself(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	if err := services.DeleteAccount(user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
