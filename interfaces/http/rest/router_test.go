package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventory-backend/domain/inventory"
	"inventory-backend/infrastructure/config"
	lambdahandlers "inventory-backend/interfaces/lambda/handlers"
	"inventory-backend/pkg/observability"
	"inventory-backend/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, repo *mocks.MockInventoryRepository) http.Handler {
	t.Helper()
	cfg := &config.Config{InventoryTable: "inventory", EnableCORS: true}
	handler := lambdahandlers.NewInventoryHandler(
		repo,
		nil,
		observability.NewMetrics("Inventory/test", nil, zap.NewNop()),
		zap.NewNop(),
	)
	return NewRouter(cfg, handler, zap.NewNop()).Setup()
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t, new(mocks.MockInventoryRepository))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestRouter_CreateItem(t *testing.T) {
	repo := new(mocks.MockInventoryRepository)
	repo.On("List", mock.Anything, inventory.ItemSearch{Name: "Widget"}).
		Return([]inventory.Item{})
	repo.On("Create", mock.Anything, inventory.Item{Name: "Widget", Quantity: 3, UnitPrice: 2.5}).
		Return("item-123")

	router := newTestRouter(t, repo)

	req := httptest.NewRequest(http.MethodPost, "/inventory/",
		strings.NewReader(`{"name":"Widget","quantity":3,"unitPrice":2.5}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Successfully created new inventory item: item-123"}`, rec.Body.String())
	repo.AssertExpectations(t)
}

func TestRouter_GetInventoryPlumbsQueryName(t *testing.T) {
	repo := new(mocks.MockInventoryRepository)
	repo.On("List", mock.Anything, inventory.ItemSearch{Name: "Widget"}).
		Return([]inventory.Item{{ID: "item-1", Name: "Widget", Quantity: 3, UnitPrice: 2.5, CreatedAt: "01-15-2024"}})

	router := newTestRouter(t, repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inventory/?name=Widget", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"items":[{"id":"item-1","name":"Widget","quantity":3,"unitPrice":2.5,"createdAt":"01-15-2024"}]}`,
		rec.Body.String())
	repo.AssertExpectations(t)
}

func TestRouter_UpdateItemPlumbsPathID(t *testing.T) {
	repo := new(mocks.MockInventoryRepository)
	repo.On("Get", mock.Anything, inventory.ItemSearch{ID: "item-1"}).
		Return(&inventory.Item{ID: "item-1", Name: "Widget"})
	repo.On("Update", mock.Anything, "item-1",
		inventory.Item{Name: "Gadget", Quantity: 7, UnitPrice: 4.25}).
		Return("item-1")

	router := newTestRouter(t, repo)

	req := httptest.NewRequest(http.MethodPut, "/inventory/item-1",
		strings.NewReader(`{"name":"Gadget","quantity":7,"unitPrice":4.25}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Successfully updated an inventory item: item-1"}`, rec.Body.String())
	repo.AssertExpectations(t)
}

func TestRouter_DeleteItemNotFound(t *testing.T) {
	repo := new(mocks.MockInventoryRepository)
	repo.On("Get", mock.Anything, inventory.ItemSearch{ID: "item-9"}).Return(nil)

	router := newTestRouter(t, repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/inventory/item-9", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Item not found: item-9"}`, rec.Body.String())
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
