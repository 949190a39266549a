package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/yatube/server/pkg/internal/database"
	"github.com/yatube/server/pkg/internal/models"
	"gorm.io/gorm"
)

func FilterPostWithAuthor(tx *gorm.DB, username string) (*gorm.DB, error) {
	var author models.Account
	if err := database.C.Where("username = ?", username).First(&author).Error; err != nil {
		return tx, fmt.Errorf("unable to find author: %v", err)
	}
	return tx.Where("author_id = ?", author.ID), nil
}

func FilterPostWithGroup(tx *gorm.DB, slug string) (*gorm.DB, error) {
	var group models.Group
	if err := database.C.Where("slug = ?", slug).First(&group).Error; err != nil {
		return tx, fmt.Errorf("unable to find group: %v", err)
	}
	return tx.Where("group_id = ?", group.ID), nil
}

func FilterPostWithFuzzySearch(tx *gorm.DB, probe string) *gorm.DB {
	return tx.Where("body ILIKE ?", "%"+probe+"%")
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}
	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int, order string) ([]*models.Post, error) {
	take = lo.Clamp(take, 1, 100)

	var items []*models.Post
	if err := tx.
		Limit(take).Offset(offset).
		Preload("Author").
		Preload("Group").
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := tx.
		Where("id = ?", id).
		Preload("Author").
		Preload("Group").
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

// NewPost persists a post for its resolved author. A group reference, if
// supplied, must point at an existing group.
func NewPost(author models.Account, item models.Post) (models.Post, error) {
	if item.GroupID != nil {
		if _, err := GetGroup(*item.GroupID); err != nil {
			return item, ErrGroupNotFound
		}
	}

	item.AuthorID = author.ID
	item.Author = author
	item.Language = DetectLanguage(item.Body)
	item.PublishedAt = time.Now()

	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func EditPost(item models.Post) (models.Post, error) {
	if item.GroupID != nil {
		if _, err := GetGroup(*item.GroupID); err != nil {
			return item, ErrGroupNotFound
		}
	}

	item.Language = DetectLanguage(item.Body)

	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func DeletePost(item models.Post) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Comment{}, "post_id = ?", item.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}

		if item.Image != nil {
			if err := DeleteAttachment(*item.Image); err != nil && !errors.Is(err, ErrAttachmentMissing) {
				return err
			}
		}

		return nil
	})
}
