package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/vyapar/app/events"
	"github.com/shashiranjanraj/vyapar/app/models"
	"github.com/shashiranjanraj/vyapar/app/repositories"
	"github.com/shashiranjanraj/vyapar/pkg/apperr"
	"github.com/shashiranjanraj/vyapar/pkg/cache"
	"github.com/shashiranjanraj/vyapar/pkg/event"
	"gorm.io/gorm"
)

const productsCacheTTL = 30 * time.Second

func productsCacheKey(vendorID uint) string {
	return fmt.Sprintf("products:vendor:%d", vendorID)
}

// ProductService owns the vendor-scoped product catalogue.
type ProductService struct {
	products *repositories.ProductRepository
	vendors  *repositories.VendorRepository
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{
		products: repositories.NewProductRepository(db),
		vendors:  repositories.NewVendorRepository(db),
	}
}

// Create adds a product to a vendor's catalogue. The vendor must exist;
// ownership is fixed here and never changes afterwards.
func (s *ProductService) Create(name, description string, price float64, vendorID uint) (models.Product, error) {
	exists, err := s.vendors.ExistsByID(vendorID)
	if err != nil {
		return models.Product{}, apperr.Storage("check vendor", err)
	}
	if !exists {
		return models.Product{}, apperr.ErrNotFound
	}

	product := models.Product{
		Name:        name,
		Description: description,
		Price:       price,
		VendorID:    vendorID,
	}
	if err := s.products.Create(&product); err != nil {
		return models.Product{}, apperr.Storage("create product", err)
	}

	cache.Del(productsCacheKey(vendorID)) //nolint:errcheck

	event.Publish(events.ProductCreated, events.ProductPayload{
		ProductID: product.ID,
		VendorID:  product.VendorID,
		Name:      product.Name,
	})

	return product, nil
}

// ByVendor lists a vendor's products, served from the Redis cache when
// warm. An unknown vendor yields an empty list, not an error.
func (s *ProductService) ByVendor(vendorID uint) ([]models.Product, error) {
	key := productsCacheKey(vendorID)

	var cached []models.Product
	if cache.Get(key, &cached) {
		return cached, nil
	}

	products, err := s.products.ByVendor(vendorID)
	if err != nil {
		return nil, apperr.Storage("list products", err)
	}

	cache.Set(key, products, productsCacheTTL) //nolint:errcheck

	return products, nil
}

// Update replaces the three mutable fields of a product and returns the
// post-update entity. The ID and owning vendor never change.
func (s *ProductService) Update(id uint, name, description string, price float64) (models.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return models.Product{}, err
	}

	product.Name = name
	product.Description = description
	product.Price = price

	if err := s.products.Update(&product); err != nil {
		return models.Product{}, apperr.Storage("update product", err)
	}

	cache.Del(productsCacheKey(product.VendorID)) //nolint:errcheck

	event.Publish(events.ProductUpdated, events.ProductPayload{
		ProductID: product.ID,
		VendorID:  product.VendorID,
		Name:      product.Name,
	})

	return product, nil
}

// Delete removes a product. Deleting an already-absent product succeeds,
// so the operation is idempotent from the caller's side.
func (s *ProductService) Delete(id uint) error {
	// Fetch first so the owning vendor's cache entry can be invalidated;
	// a missing product means there is nothing to delete or invalidate.
	product, err := s.products.FindByID(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		return apperr.Storage("find product", err)
	}

	if err := s.products.DeleteByID(id); err != nil {
		return apperr.Storage("delete product", err)
	}

	cache.Del(productsCacheKey(product.VendorID)) //nolint:errcheck

	event.Publish(events.ProductDeleted, events.ProductPayload{
		ProductID: id,
		VendorID:  product.VendorID,
		Name:      product.Name,
	})

	return nil
}
