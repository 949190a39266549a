package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/yatube/server/pkg/internal/database"
	"github.com/yatube/server/pkg/internal/http/exts"
	"github.com/yatube/server/pkg/internal/models"
	"github.com/yatube/server/pkg/internal/services"
)

func commentParentPost(c *fiber.Ctx) (models.Post, error) {
	id, _ := c.ParamsInt("postId", 0)

	var post models.Post
	if err := database.C.Where("id = ?", id).First(&post).Error; err != nil {
		return post, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find post: %v", err))
	}

	return post, nil
}

func listComment(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	post, err := commentParentPost(c)
	if err != nil {
		return err
	}

	count, err := services.CountComment(post.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListComment(post.ID, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func getComment(c *fiber.Ctx) error {
	post, err := commentParentPost(c)
	if err != nil {
		return err
	}
	id, _ := c.ParamsInt("commentId", 0)

	item, err := services.GetComment(post.ID, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(item)
}

func createComment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	post, err := commentParentPost(c)
	if err != nil {
		return err
	}

	var data struct {
		Body string `json:"body" validate:"required,max=4096"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewComment(user, post, models.Comment{Body: data.Body})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func editComment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	post, err := commentParentPost(c)
	if err != nil {
		return err
	}
	id, _ := c.ParamsInt("commentId", 0)

	var data struct {
		Body string `json:"body" validate:"required,max=4096"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.GetComment(post.ID, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if !services.CanMutate(user.ID, item.AuthorID) {
		return fiber.NewError(fiber.StatusForbidden, services.ErrNotAuthor.Error())
	}

	item.Body = data.Body

	if item, err = services.EditComment(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func deleteComment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	post, err := commentParentPost(c)
	if err != nil {
		return err
	}
	id, _ := c.ParamsInt("commentId", 0)

	item, err := services.GetComment(post.ID, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if !services.CanMutate(user.ID, item.AuthorID) {
		return fiber.NewError(fiber.StatusForbidden, services.ErrNotAuthor.Error())
	}

	if err := services.DeleteComment(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
