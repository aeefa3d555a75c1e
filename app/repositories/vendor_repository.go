package repositories

import (
	"errors"

	"github.com/shashiranjanraj/vyapar/app/models"
	"github.com/shashiranjanraj/vyapar/pkg/apperr"
	"gorm.io/gorm"
)

// VendorRepository handles database operations for Vendor.
type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

// Create persists a new vendor record.
func (r *VendorRepository) Create(vendor *models.Vendor) error {
	return r.db.Create(vendor).Error
}

// ExistsByID reports whether a vendor with this primary key exists.
func (r *VendorRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Vendor{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FirstByUser returns the earliest-created vendor owned by the user,
// joined with the owner's email. Ordering by primary key makes the
// "first match" deterministic when a user owns several vendors.
func (r *VendorRepository) FirstByUser(userID uint) (models.VendorWithEmail, error) {
	var vendor models.VendorWithEmail
	err := r.db.Model(&models.Vendor{}).
		Select("vendors.*, users.email AS user_email").
		Joins("LEFT JOIN users ON users.id = vendors.user_id").
		Where("vendors.user_id = ?", userID).
		Order("vendors.id asc").
		First(&vendor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return vendor, apperr.ErrNotFound
	}
	return vendor, err
}

// AllWithEmail returns every vendor joined with its owner's email.
func (r *VendorRepository) AllWithEmail() ([]models.VendorWithEmail, error) {
	var vendors []models.VendorWithEmail
	err := r.db.Model(&models.Vendor{}).
		Select("vendors.*, users.email AS user_email").
		Joins("LEFT JOIN users ON users.id = vendors.user_id").
		Order("vendors.id asc").
		Find(&vendors).Error
	return vendors, err
}
