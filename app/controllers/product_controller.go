package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vyapar/app/services"
	"github.com/shashiranjanraj/vyapar/pkg/bind"
	"github.com/shashiranjanraj/vyapar/pkg/database"
	"github.com/shashiranjanraj/vyapar/pkg/response"
)

// ProductController handles the vendor-scoped product catalogue.
type ProductController struct {
	service *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{service: services.NewProductService(database.DB)}
}

// Price binds as a pointer so an explicit zero price stays distinguishable
// from a missing field; free items are valid catalogue entries.
type createProductInput struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description" validate:"nullable"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	VendorID    uint     `json:"vendorId"    validate:"required"`
}

// Create adds a product to a vendor's catalogue.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var body createProductInput
	if err := bind.JSON(r, &body); err != nil {
		response.FromError(w, err)
		return
	}

	product, err := c.service.Create(body.Name, body.Description, *body.Price, body.VendorID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, product)
}

// IndexByVendor lists a vendor's products. Unknown vendors get an empty
// list, not an error.
func (c *ProductController) IndexByVendor(w http.ResponseWriter, r *http.Request) {
	vendorID, err := paramUint(r, "vendorId")
	if err != nil {
		response.FromError(w, err)
		return
	}

	products, err := c.service.ByVendor(vendorID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, products)
}

type updateProductInput struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description" validate:"nullable"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
}

// Update replaces a product's name, description, and price.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := paramUint(r, "id")
	if err != nil {
		response.FromError(w, err)
		return
	}

	var body updateProductInput
	if err := bind.JSON(r, &body); err != nil {
		response.FromError(w, err)
		return
	}

	product, err := c.service.Update(id, body.Name, body.Description, *body.Price)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, product)
}

// Delete removes a product. Repeating the call reports success again.
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := paramUint(r, "id")
	if err != nil {
		response.FromError(w, err)
		return
	}

	if err := c.service.Delete(id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Product deleted"})
}
