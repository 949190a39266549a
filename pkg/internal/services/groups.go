package services

import (
	"errors"
	"fmt"

	"github.com/yatube/server/pkg/internal/database"
	"github.com/yatube/server/pkg/internal/models"
	"gorm.io/gorm"
)

func ListGroup() ([]models.Group, error) {
	var groups []models.Group
	if err := database.C.Find(&groups).Error; err != nil {
		return groups, err
	}
	return groups, nil
}

func GetGroup(id uint) (models.Group, error) {
	var group models.Group
	if err := database.C.Where("id = ?", id).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return group, ErrGroupNotFound
		}
		return group, fmt.Errorf("unable to get group: %v", err)
	}
	return group, nil
}

func NewGroup(group models.Group) (models.Group, error) {
	var count int64
	if err := database.C.
		Model(&models.Group{}).
		Where("slug = ?", group.Slug).
		Count(&count).Error; err != nil {
		return group, fmt.Errorf("unable to count existing groups: %v", err)
	}
	if count > 0 {
		return group, fmt.Errorf("group with slug %s already exists", group.Slug)
	}

	if err := database.C.Create(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

// DeleteGroup detaches the group from its posts instead of cascading;
// the posts survive with a cleared group reference.
func DeleteGroup(group models.Group) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("group_id = ?", group.ID).
			Update("group_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&group).Error
	})
}
