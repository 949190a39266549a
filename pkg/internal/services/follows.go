package services

import (
	"errors"
	"fmt"

	"github.com/yatube/server/pkg/internal/database"
	"github.com/yatube/server/pkg/internal/models"
	"gorm.io/gorm"
)

func ListFollow(follower models.Account) ([]models.Follow, error) {
	var items []models.Follow
	if err := database.C.
		Where("follower_id = ?", follower.ID).
		Preload("Follower").
		Preload("Following").
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

// NewFollow creates a directed edge from follower to the named target.
// Check order is fixed: target existence, then self-follow, then the
// duplicate edge. The duplicate check and the insert are not atomic; the
// composite primary key is the authoritative backstop.
func NewFollow(follower models.Account, targetUsername string) (models.Follow, error) {
	var item models.Follow

	var target models.Account
	if err := database.C.Where("username = ?", targetUsername).First(&target).Error; err != nil {
		return item, ErrFollowTargetNotFound
	}

	if follower.ID == target.ID {
		return item, ErrSelfFollow
	}

	var count int64
	if err := database.C.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", follower.ID, target.ID).
		Count(&count).Error; err != nil {
		return item, fmt.Errorf("unable to count existing follows: %v", err)
	}
	if count > 0 {
		return item, ErrFollowExists
	}

	item = models.Follow{
		FollowerID:  follower.ID,
		FollowingID: target.ID,
		Follower:    follower,
		Following:   target,
	}

	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func DeleteFollow(follower models.Account, followingID uint) error {
	var item models.Follow
	if err := database.C.
		Where("follower_id = ? AND following_id = ?", follower.ID, followingID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFollowTargetNotFound
		}
		return err
	}

	return database.C.Delete(&item).Error
}
