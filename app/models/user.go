package models

import "gorm.io/gorm"

// User is an account that can authenticate and register vendors.
// Email uniqueness is enforced by the database index, so two concurrent
// registrations for the same address cannot both commit.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
}
