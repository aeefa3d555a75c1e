package seeders

import (
	"github.com/shashiranjanraj/vyapar/app/models"
	"github.com/shashiranjanraj/vyapar/pkg/auth"
	"gorm.io/gorm"
)

func init() {
	Register("demo", SeedDemo)
}

// SeedDemo inserts one demo user, vendor, and product for local smoke
// testing. Running it twice is harmless; it skips when the user exists.
func SeedDemo(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "demo@vyapar.local").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword("demo-password")
	if err != nil {
		return err
	}

	user := models.User{Email: "demo@vyapar.local", Password: hash}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	vendor := models.Vendor{Name: "Demo Supplies", ContactInfo: "demo@vyapar.local", UserID: user.ID}
	if err := db.Create(&vendor).Error; err != nil {
		return err
	}

	product := models.Product{
		Name:        "A4 Paper (500 sheets)",
		Description: "80gsm multipurpose copy paper",
		Price:       4.99,
		VendorID:    vendor.ID,
	}
	return db.Create(&product).Error
}
