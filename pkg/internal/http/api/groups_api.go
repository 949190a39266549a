package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yatube/server/pkg/internal/services"
)

func listGroup(c *fiber.Ctx) error {
	groups, err := services.ListGroup()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(groups)
}

func getGroup(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("groupId", 0)

	group, err := services.GetGroup(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(group)
}
