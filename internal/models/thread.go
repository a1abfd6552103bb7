package models

import "gorm.io/gorm"

// Thread represents a discussion board that posts are filed under.
type Thread struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Description string `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	CreatorID   string `json:"creator_id" gorm:"type:varchar(36)"`
	gorm.Model
}
