package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yatube/server/pkg/internal/http/exts"
	"github.com/yatube/server/pkg/internal/models"
	"github.com/yatube/server/pkg/internal/services"
)

func listFollow(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	items, err := services.ListFollow(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(items)
}

func createFollow(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Following string `json:"following" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewFollow(user, data.Following)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFollowTargetNotFound),
			errors.Is(err, services.ErrSelfFollow),
			errors.Is(err, services.ErrFollowExists):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func deleteFollow(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("accountId", 0)

	if err := services.DeleteFollow(user, uint(id)); err != nil {
		if errors.Is(err, services.ErrFollowTargetNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
