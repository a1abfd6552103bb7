package models

import "gorm.io/gorm"

// User represents a registered account, created either with local credentials
// or from a Google profile.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	// Password holds the bcrypt hash. Empty for accounts created via the
	// Google flow, which never get a local credential.
	Password   string `json:"-" gorm:"type:varchar(255)"`
	Bio        string `json:"bio" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Picture    string `json:"picture" gorm:"type:varchar(512)"`
	Verified   bool   `json:"verified"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// GoogleProfile is identity data already verified by Google. It is a separate
// input type from local credentials on purpose: nothing in it ever goes
// through password verification.
type GoogleProfile struct {
	Email         string `json:"email" validate:"required,email"`
	EmailVerified bool   `json:"email_verified"`
	Picture       string `json:"picture"`
}
