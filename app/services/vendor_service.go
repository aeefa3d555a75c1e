package services

import (
	"time"

	"github.com/shashiranjanraj/vyapar/app/events"
	"github.com/shashiranjanraj/vyapar/app/models"
	"github.com/shashiranjanraj/vyapar/app/repositories"
	"github.com/shashiranjanraj/vyapar/pkg/apperr"
	"github.com/shashiranjanraj/vyapar/pkg/cache"
	"github.com/shashiranjanraj/vyapar/pkg/event"
	"gorm.io/gorm"
)

const (
	vendorsCacheKey = "vendors:all"
	vendorsCacheTTL = 30 * time.Second
)

// VendorService owns vendor registration and the user→vendor lookups.
type VendorService struct {
	vendors *repositories.VendorRepository
	users   *repositories.UserRepository
}

func NewVendorService(db *gorm.DB) *VendorService {
	return &VendorService{
		vendors: repositories.NewVendorRepository(db),
		users:   repositories.NewUserRepository(db),
	}
}

// Register creates a vendor owned by userID. The referenced user must
// exist; a vendor may never point at a user that was never registered.
func (s *VendorService) Register(name, contactInfo string, userID uint) (models.Vendor, error) {
	exists, err := s.users.ExistsByID(userID)
	if err != nil {
		return models.Vendor{}, apperr.Storage("check user", err)
	}
	if !exists {
		return models.Vendor{}, apperr.ErrNotFound
	}

	vendor := models.Vendor{Name: name, ContactInfo: contactInfo, UserID: userID}
	if err := s.vendors.Create(&vendor); err != nil {
		return models.Vendor{}, apperr.Storage("create vendor", err)
	}

	cache.Del(vendorsCacheKey) //nolint:errcheck

	event.Publish(events.VendorRegistered, events.VendorRegisteredPayload{
		VendorID: vendor.ID,
		UserID:   vendor.UserID,
		Name:     vendor.Name,
	})

	return vendor, nil
}

// ByUser returns the user's earliest-created vendor with the owner email
// joined in.
func (s *VendorService) ByUser(userID uint) (models.VendorWithEmail, error) {
	return s.vendors.FirstByUser(userID)
}

// All returns every vendor with owner emails, served from the Redis cache
// when warm.
func (s *VendorService) All() ([]models.VendorWithEmail, error) {
	var cached []models.VendorWithEmail
	if cache.Get(vendorsCacheKey, &cached) {
		return cached, nil
	}

	vendors, err := s.vendors.AllWithEmail()
	if err != nil {
		return nil, apperr.Storage("list vendors", err)
	}

	cache.Set(vendorsCacheKey, vendors, vendorsCacheTTL) //nolint:errcheck

	return vendors, nil
}
