package repositories

import (
	"errors"

	"github.com/shashiranjanraj/vyapar/app/models"
	"github.com/shashiranjanraj/vyapar/pkg/apperr"
	"gorm.io/gorm"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create persists a new product record.
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return product, apperr.ErrNotFound
	}
	return product, err
}

// ByVendor returns the products owned by a vendor. An unknown vendor yields
// an empty slice, not an error.
func (r *ProductRepository) ByVendor(vendorID uint) ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.Where("vendor_id = ?", vendorID).Order("id asc").Find(&products).Error
	return products, err
}

// Update persists changes to an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// DeleteByID removes a product if it exists. Deleting a missing product is
// not an error; the operation is idempotent in effect.
func (r *ProductRepository) DeleteByID(id uint) error {
	return r.db.Unscoped().Delete(&models.Product{}, id).Error
}
