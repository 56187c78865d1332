// Package mocks provides testify mocks for the application ports.
package mocks

import (
	"context"

	"inventory-backend/domain/events"
	"inventory-backend/domain/inventory"

	"github.com/stretchr/testify/mock"
)

// MockInventoryRepository is a mock implementation of ports.InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) List(ctx context.Context, search inventory.ItemSearch) []inventory.Item {
	args := m.Called(ctx, search)
	return args.Get(0).([]inventory.Item)
}

func (m *MockInventoryRepository) Get(ctx context.Context, search inventory.ItemSearch) *inventory.Item {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*inventory.Item)
}

func (m *MockInventoryRepository) Create(ctx context.Context, item inventory.Item) string {
	args := m.Called(ctx, item)
	return args.String(0)
}

func (m *MockInventoryRepository) Update(ctx context.Context, id string, item inventory.Item) string {
	args := m.Called(ctx, id, item)
	return args.String(0)
}

func (m *MockInventoryRepository) Delete(ctx context.Context, id string) string {
	args := m.Called(ctx, id)
	return args.String(0)
}

// MockEventBus is a mock implementation of ports.EventBus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
