package models

import "time"

// Follow is a directed edge, at most one per ordered pair.
// Self-follow is rejected in services, not by the schema.
type Follow struct {
	FollowerID  uint      `json:"follower_id" gorm:"primaryKey"`
	FollowingID uint      `json:"following_id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`

	Follower  Account `json:"follower" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Following Account `json:"following" gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE"`
}
