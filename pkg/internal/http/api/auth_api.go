package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yatube/server/pkg/internal/http/exts"
	"github.com/yatube/server/pkg/internal/services"
)

func createTokenPair(c *fiber.Ctx) error {
	var data struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user, err := services.Authenticate(data.Username, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	access, refresh, err := services.IssueTokenPair(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"access":  access,
		"refresh": refresh,
	})
}

func refreshAccessToken(c *fiber.Ctx) error {
	var data struct {
		Refresh string `json:"refresh" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	access, err := services.ExchangeRefreshToken(data.Refresh)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	return c.JSON(fiber.Map{
		"access": access,
	})
}

func verifyToken(c *fiber.Ctx) error {
	var data struct {
		Token string `json:"token" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.Reader.Verify(data.Token); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
