package models

type Account struct {
	BaseModel

	Username string `json:"username" gorm:"uniqueIndex" validate:"required,max=30"`
	Email    string `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	Password string `json:"-"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	Posts    []Post    `json:"posts" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments" gorm:"foreignKey:AuthorID"`

	Followers  []Follow `json:"followers,omitempty" gorm:"foreignKey:FollowingID"`
	Followings []Follow `json:"followings,omitempty" gorm:"foreignKey:FollowerID"`
}
