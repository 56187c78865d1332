package ports

import (
	"context"

	"inventory-backend/domain/events"
	"inventory-backend/domain/inventory"
)

// InventoryRepository defines the interface for inventory persistence.
// This is a port in hexagonal architecture - the handlers don't know about
// the implementation.
//
// None of these operations surface store errors to the caller: failures are
// logged and collapsed into the absent result (nil item, empty slice, empty
// id), so "not found" and "store unavailable" are indistinguishable here.
type InventoryRepository interface {
	// List returns every item whose name contains search.Name as a
	// substring. An empty search name matches the whole table.
	List(ctx context.Context, search inventory.ItemSearch) []inventory.Item

	// Get retrieves an item by its primary key, or nil when absent.
	Get(ctx context.Context, search inventory.ItemSearch) *inventory.Item

	// Create writes a new record with a generated id and createdAt stamp,
	// returning the id, or "" when the write failed.
	Create(ctx context.Context, item inventory.Item) string

	// Update overwrites name, quantity and unitPrice of the record keyed
	// by id and echoes the id back, or "" when the write failed. It never
	// touches createdAt.
	Update(ctx context.Context, id string, item inventory.Item) string

	// Delete removes the record keyed by id unconditionally and echoes the
	// id back, or "" when the delete failed.
	Delete(ctx context.Context, id string) string
}

// EventBus defines the interface for publishing domain events
type EventBus interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}
