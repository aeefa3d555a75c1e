package models

import "gorm.io/gorm"

// Vendor is a selling organisation registered by a user. A user may own
// several vendor records; lookups by user pick the earliest created one.
type Vendor struct {
	gorm.Model
	Name        string `gorm:"size:255;not null"      json:"name"`
	ContactInfo string `gorm:"size:255;not null"      json:"contactInfo"`
	UserID      uint   `gorm:"not null;index"         json:"userId"`
}

// VendorWithEmail is the read shape for vendor listings: the vendor row
// joined with the owning user's email.
type VendorWithEmail struct {
	Vendor
	UserEmail string `json:"userEmail"`
}
