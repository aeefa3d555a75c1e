package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vyapar/app/services"
	"github.com/shashiranjanraj/vyapar/pkg/bind"
	"github.com/shashiranjanraj/vyapar/pkg/database"
	"github.com/shashiranjanraj/vyapar/pkg/response"
)

// VendorController handles vendor registration and lookups.
type VendorController struct {
	service *services.VendorService
}

func NewVendorController() *VendorController {
	return &VendorController{service: services.NewVendorService(database.DB)}
}

type vendorInput struct {
	Name        string `json:"name"        validate:"required"`
	ContactInfo string `json:"contactInfo" validate:"required"`
	UserID      uint   `json:"userId"      validate:"required"`
}

// Create registers a new vendor owned by an existing user.
func (c *VendorController) Create(w http.ResponseWriter, r *http.Request) {
	var body vendorInput
	if err := bind.JSON(r, &body); err != nil {
		response.FromError(w, err)
		return
	}

	vendor, err := c.service.Register(body.Name, body.ContactInfo, body.UserID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, vendor)
}

// ShowByUser returns the user's vendor joined with the owner email.
func (c *VendorController) ShowByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := paramUint(r, "userId")
	if err != nil {
		response.FromError(w, err)
		return
	}

	vendor, err := c.service.ByUser(userID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, vendor)
}

// Index returns every vendor joined with its owner email.
func (c *VendorController) Index(w http.ResponseWriter, r *http.Request) {
	vendors, err := c.service.All()
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, vendors)
}
