package services

import (
	"github.com/samber/lo"

	"github.com/yatube/server/pkg/internal/database"
	"github.com/yatube/server/pkg/internal/models"
)

func CountComment(postID uint) (int64, error) {
	var count int64
	if err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return count, err
	}
	return count, nil
}

func ListComment(postID uint, take int, offset int) ([]*models.Comment, error) {
	take = lo.Clamp(take, 1, 100)

	var items []*models.Comment
	if err := database.C.
		Where("post_id = ?", postID).
		Limit(take).Offset(offset).
		Preload("Author").
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func GetComment(postID, id uint) (models.Comment, error) {
	var item models.Comment
	if err := database.C.
		Where("id = ? AND post_id = ?", id, postID).
		Preload("Author").
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func NewComment(author models.Account, post models.Post, item models.Comment) (models.Comment, error) {
	item.AuthorID = author.ID
	item.Author = author
	item.PostID = post.ID

	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func EditComment(item models.Comment) (models.Comment, error) {
	err := database.C.Save(&item).Error
	return item, err
}

func DeleteComment(item models.Comment) error {
	return database.C.Delete(&item).Error
}
