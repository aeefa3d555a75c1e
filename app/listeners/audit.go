// Package listeners wires event subscribers onto the application bus.
package listeners

import (
	"github.com/shashiranjanraj/vyapar/app/events"
	"github.com/shashiranjanraj/vyapar/pkg/event"
	"github.com/shashiranjanraj/vyapar/pkg/logger"
)

// RegisterAudit subscribes the audit trail to every domain event. Each
// entry goes through the structured logger, so the Mongo sink picks them
// up when configured.
func RegisterAudit() {
	event.Subscribe(events.UserRegistered, func(payload any) {
		if p, ok := payload.(events.UserRegisteredPayload); ok {
			logger.Info("user registered", "user_id", p.UserID, "email", p.Email)
		}
	})

	event.Subscribe(events.VendorRegistered, func(payload any) {
		if p, ok := payload.(events.VendorRegisteredPayload); ok {
			logger.Info("vendor registered", "vendor_id", p.VendorID, "user_id", p.UserID, "name", p.Name)
		}
	})

	event.Subscribe(events.ProductCreated, func(payload any) {
		if p, ok := payload.(events.ProductPayload); ok {
			logger.Info("product created", "product_id", p.ProductID, "vendor_id", p.VendorID, "name", p.Name)
		}
	})

	event.Subscribe(events.ProductUpdated, func(payload any) {
		if p, ok := payload.(events.ProductPayload); ok {
			logger.Info("product updated", "product_id", p.ProductID, "vendor_id", p.VendorID, "name", p.Name)
		}
	})

	event.Subscribe(events.ProductDeleted, func(payload any) {
		if p, ok := payload.(events.ProductPayload); ok {
			logger.Info("product deleted", "product_id", p.ProductID, "vendor_id", p.VendorID)
		}
	})
}
