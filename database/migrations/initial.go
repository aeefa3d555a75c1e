package migrations

import (
	"github.com/shashiranjanraj/vyapar/app/models"
	"github.com/shashiranjanraj/vyapar/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260301000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260301000001_create_vendors_table", &CreateVendorsTable{})
	migration.Register("20260301000002_create_products_table", &CreateProductsTable{})
}

// -------- 0001: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: vendors --------

type CreateVendorsTable struct{}

func (m *CreateVendorsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Vendor{})
}

func (m *CreateVendorsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("vendors")
}

// -------- 0003: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}
