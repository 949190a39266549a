package services

import (
	"fmt"

	"github.com/yatube/server/pkg/internal/database"
	"github.com/yatube/server/pkg/internal/models"
	"github.com/yatube/server/pkg/internal/security"
	"gorm.io/gorm"
)

// NewAccount registers an account. The duplicate pre-check and the insert
// are not atomic; concurrent losers hit the unique indexes instead and
// surface a raw constraint error rather than ErrAccountExists.
func NewAccount(username, email, password string) (models.Account, error) {
	var account models.Account
	var count int64
	if err := database.C.
		Model(&models.Account{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return account, fmt.Errorf("unable to count existing accounts: %v", err)
	}
	if count > 0 {
		return account, ErrAccountExists
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return account, fmt.Errorf("unable to hash password: %v", err)
	}

	account = models.Account{
		Username: username,
		Email:    email,
		Password: hash,
		IsActive: true,
	}

	if err := database.C.Create(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

// DeleteAccount removes an account with everything it owns: authored
// posts and comments, comments left on those posts, and follow edges in
// both directions.
func DeleteAccount(account models.Account) error {
	err := database.C.Transaction(func(tx *gorm.DB) error {
		var postIds []uint
		if err := tx.Model(&models.Post{}).
			Where("author_id = ?", account.ID).
			Pluck("id", &postIds).Error; err != nil {
			return err
		}

		if len(postIds) > 0 {
			if err := tx.Delete(&models.Comment{}, "post_id IN ?", postIds).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.Comment{}, "author_id = ?", account.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Post{}, "author_id = ?", account.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Follow{}, "follower_id = ? OR following_id = ?", account.ID, account.ID).Error; err != nil {
			return err
		}

		return tx.Delete(&account).Error
	})
	if err != nil {
		return err
	}

	InvalidAccountCache(account.Username)
	return nil
}
