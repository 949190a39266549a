package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yatube/server/pkg/internal/database"
	"github.com/yatube/server/pkg/internal/http/exts"
	"github.com/yatube/server/pkg/internal/models"
	"github.com/yatube/server/pkg/internal/services"
)

func universalPostFilter(c *fiber.Ctx, tx *gorm.DB) (*gorm.DB, error) {
	var err error
	if len(c.Query("author")) > 0 {
		if tx, err = services.FilterPostWithAuthor(tx, c.Query("author")); err != nil {
			return tx, fiber.NewError(fiber.StatusNotFound, err.Error())
		}
	}
	if len(c.Query("group")) > 0 {
		if tx, err = services.FilterPostWithGroup(tx, c.Query("group")); err != nil {
			return tx, fiber.NewError(fiber.StatusNotFound, err.Error())
		}
	}
	if len(c.Query("probe")) > 0 {
		tx = services.FilterPostWithFuzzySearch(tx, c.Query("probe"))
	}

	return tx, nil
}

func listPost(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	tx := database.C.Model(&models.Post{})

	var err error
	if tx, err = universalPostFilter(c, tx); err != nil {
		return err
	}

	count, err := services.CountPost(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListPost(tx, take, offset, "published_at DESC")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func getPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(item)
}

func createPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Body  string  `json:"body" validate:"required,max=4096"`
		Group *uint   `json:"group"`
		Image *string `json:"image"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item := models.Post{
		Body:    data.Body,
		GroupID: data.Group,
	}

	if data.Image != nil && len(*data.Image) > 0 {
		filename, err := services.SaveAttachmentFromBase64(*data.Image)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		item.Image = &filename
	}

	item, err := services.NewPost(user, item)
	if err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func editPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	var data struct {
		Body  string  `json:"body" validate:"required,max=4096"`
		Group *uint   `json:"group"`
		Image *string `json:"image"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	var item models.Post
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if !services.CanMutate(user.ID, item.AuthorID) {
		return fiber.NewError(fiber.StatusForbidden, services.ErrNotAuthor.Error())
	}

	item.Body = data.Body
	item.GroupID = data.Group

	if data.Image != nil && len(*data.Image) > 0 {
		filename, err := services.SaveAttachmentFromBase64(*data.Image)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		item.Image = &filename
	}

	item, err := services.EditPost(item)
	if err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func deletePost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	var item models.Post
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find post to delete: %v", err))
	}

	if !services.CanMutate(user.ID, item.AuthorID) {
		return fiber.NewError(fiber.StatusForbidden, services.ErrNotAuthor.Error())
	}

	if err := services.DeletePost(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
