package models

import "time"

type Post struct {
	BaseModel

	Body     string  `json:"body"`
	Language string  `json:"language"`
	Image    *string `json:"image"`

	PublishedAt time.Time `json:"published_at"`

	Comments []Comment `json:"comments" gorm:"foreignKey:PostID"`

	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group" gorm:"constraint:OnDelete:SET NULL"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author" gorm:"constraint:OnDelete:CASCADE"`
}
