// Package events names the domain events published by the service layer.
package events

// Event names. Payload types follow each name.
const (
	UserRegistered   = "user.registered"
	VendorRegistered = "vendor.registered"
	ProductCreated   = "product.created"
	ProductUpdated   = "product.updated"
	ProductDeleted   = "product.deleted"
)

type UserRegisteredPayload struct {
	UserID uint
	Email  string
}

type VendorRegisteredPayload struct {
	VendorID uint
	UserID   uint
	Name     string
}

type ProductPayload struct {
	ProductID uint
	VendorID  uint
	Name      string
}
