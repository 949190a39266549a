package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yatube/server/pkg/internal/http/exts"
	"github.com/yatube/server/pkg/internal/models"
	"github.com/yatube/server/pkg/internal/services"
)

func adminCreateGroup(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	var data struct {
		Title       string `json:"title" validate:"required,max=200"`
		Slug        string `json:"slug" validate:"required,lowercase,max=50"`
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.NewGroup(models.Group{
		Title:       data.Title,
		Slug:        data.Slug,
		Description: data.Description,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}

func adminDeleteGroup(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	id, _ := c.ParamsInt("groupId", 0)

	group, err := services.GetGroup(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := services.DeleteGroup(group); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
