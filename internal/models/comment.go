package models

import "gorm.io/gorm"

// Comment represents a reply attached to a post.
type Comment struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	PostID   string `json:"post_id" gorm:"index;type:varchar(36)" validate:"required,uuid"`
	AuthorID string `json:"author_id" gorm:"type:varchar(36)"`
	Content  string `json:"content" gorm:"type:text" validate:"required,min=1,max=10000"`
	gorm.Model
}
