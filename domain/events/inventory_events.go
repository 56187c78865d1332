// Package events defines the domain events emitted after inventory mutations.
package events

import "time"

// SourceInventory is the event source attached to every published event.
const SourceInventory = "inventory-backend"

// DomainEvent is the base interface for all domain events.
// Events represent something that has happened in the past.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

// ItemCreated is raised when a new inventory item is created
type ItemCreated struct {
	BaseEvent
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
}

// NewItemCreated creates an ItemCreated event
func NewItemCreated(itemID, name string) ItemCreated {
	return ItemCreated{
		BaseEvent: BaseEvent{
			AggregateID: itemID,
			EventType:   "inventory.item_created",
			Timestamp:   time.Now(),
		},
		ItemID: itemID,
		Name:   name,
	}
}

// ItemUpdated is raised when an inventory item's mutable fields change
type ItemUpdated struct {
	BaseEvent
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
}

// NewItemUpdated creates an ItemUpdated event
func NewItemUpdated(itemID, name string) ItemUpdated {
	return ItemUpdated{
		BaseEvent: BaseEvent{
			AggregateID: itemID,
			EventType:   "inventory.item_updated",
			Timestamp:   time.Now(),
		},
		ItemID: itemID,
		Name:   name,
	}
}

// ItemDeleted is raised when an inventory item is removed
type ItemDeleted struct {
	BaseEvent
	ItemID string `json:"item_id"`
}

// NewItemDeleted creates an ItemDeleted event
func NewItemDeleted(itemID string) ItemDeleted {
	return ItemDeleted{
		BaseEvent: BaseEvent{
			AggregateID: itemID,
			EventType:   "inventory.item_deleted",
			Timestamp:   time.Now(),
		},
		ItemID: itemID,
	}
}
