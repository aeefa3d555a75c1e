package routes

import (
	"github.com/shashiranjanraj/vyapar/app/controllers"
	"github.com/shashiranjanraj/vyapar/pkg/middleware"
	"github.com/shashiranjanraj/vyapar/pkg/router"
)

// RegisterAPI mounts every route. Mutating catalogue operations sit behind
// the Auth middleware: a request that cannot prove who it acts as may not
// create or change anything.
func RegisterAPI(r *router.Router) {
	authController := controllers.NewAuthController()
	userController := controllers.NewUserController()
	vendorController := controllers.NewVendorController()
	productController := controllers.NewProductController()

	// Public: account lifecycle and read-only lookups.
	r.Post("/register", "auth.register", authController.Register)
	r.Post("/login", "auth.login", authController.Login)
	r.Get("/users", "users.index", userController.Index)
	r.Get("/vendor/{userId}", "vendors.show_by_user", vendorController.ShowByUser)
	r.Get("/vendors", "vendors.index", vendorController.Index)
	r.Get("/products/{vendorId}", "products.index_by_vendor", productController.IndexByVendor)

	// Protected: every write requires a valid bearer token.
	protected := r.Group("", middleware.Auth)
	protected.Post("/vendor/register", "vendors.create", vendorController.Create)
	protected.Post("/product", "products.create", productController.Create)
	protected.Put("/product/{id}", "products.update", productController.Update)
	protected.Delete("/product/{id}", "products.delete", productController.Delete)
}
