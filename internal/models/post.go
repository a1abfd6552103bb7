package models

import "gorm.io/gorm"

// Post represents a top-level submission inside a thread.
type Post struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ThreadID string `json:"thread_id" gorm:"index;type:varchar(36)" validate:"required,uuid"`
	AuthorID string `json:"author_id" gorm:"type:varchar(36)"`
	Title    string `json:"title" gorm:"type:varchar(200)" validate:"required,min=1,max=200"`
	Content  string `json:"content" gorm:"type:text" validate:"omitempty,max=10000"`
	gorm.Model
}
