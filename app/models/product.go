package models

import "gorm.io/gorm"

// Product is a catalogue entry owned by a vendor. VendorID is fixed at
// creation; updates only touch name, description, and price.
type Product struct {
	gorm.Model
	Name        string  `gorm:"size:255;not null;index" json:"name"`
	Description string  `gorm:"type:text"               json:"description"`
	Price       float64 `gorm:"not null"                json:"price"`
	VendorID    uint    `gorm:"not null;index"          json:"vendorId"`
}
