// Package handlers implements the four inventory operations as API Gateway
// proxy handlers producing the {statusCode, body} envelope.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"inventory-backend/application/ports"
	domainevents "inventory-backend/domain/events"
	"inventory-backend/domain/inventory"
	"inventory-backend/pkg/observability"
	"inventory-backend/pkg/utils"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

const (
	msgMissingFields      = "Please enter name, quantity and unit price."
	msgSomethingWentWrong = "Something went wrong."
	msgInventoryNotFound  = "Inventory item not found."
)

// itemPayload is the JSON body for create and update. The required tag on
// non-pointer fields rejects missing values and zero values alike, so 0,
// "" and null all fail validation.
type itemPayload struct {
	Name      string  `json:"name" validate:"required"`
	Quantity  float64 `json:"quantity" validate:"required"`
	UnitPrice float64 `json:"unitPrice" validate:"required"`
}

type messageBody struct {
	Message string `json:"message"`
}

type itemsBody struct {
	Items []inventory.Item `json:"items"`
}

// InventoryHandler orchestrates the inventory HTTP operations
type InventoryHandler struct {
	repo    ports.InventoryRepository
	bus     ports.EventBus
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(
	repo ports.InventoryRepository,
	bus ports.EventBus,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *InventoryHandler {
	return &InventoryHandler{
		repo:    repo,
		bus:     bus,
		metrics: metrics,
		logger:  logger,
	}
}

// CreateItem handles POST /inventory
func (h *InventoryHandler) CreateItem(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse) {
	defer h.record(ctx, "CreateItem", time.Now(), &resp)
	defer h.recoverPanic("CreateItem", &resp)

	var payload itemPayload
	if err := json.Unmarshal([]byte(req.Body), &payload); err != nil {
		h.logger.Error("Failed to decode create request body", zap.Error(err))
		return response(http.StatusInternalServerError, messageBody{Message: msgSomethingWentWrong})
	}

	if err := utils.ValidateStruct(payload); err != nil {
		return response(http.StatusUnprocessableEntity, messageBody{Message: msgMissingFields})
	}

	// Duplicate check uses the same substring search as list, so any item
	// whose name contains the submitted name counts as a duplicate.
	if existing := h.repo.List(ctx, inventory.ItemSearch{Name: payload.Name}); len(existing) > 0 {
		return response(http.StatusBadRequest, messageBody{
			Message: fmt.Sprintf("%s already exists.", payload.Name),
		})
	}

	itemID := h.repo.Create(ctx, inventory.Item{
		Name:      payload.Name,
		Quantity:  payload.Quantity,
		UnitPrice: payload.UnitPrice,
	})
	if itemID == "" {
		return response(http.StatusBadRequest, messageBody{
			Message: "Failed to create new inventory item.",
		})
	}

	h.publish(ctx, domainevents.NewItemCreated(itemID, payload.Name))

	return response(http.StatusCreated, messageBody{
		Message: fmt.Sprintf("Successfully created new inventory item: %s", itemID),
	})
}

// GetInventory handles GET /inventory
func (h *InventoryHandler) GetInventory(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse) {
	defer h.record(ctx, "GetInventory", time.Now(), &resp)
	defer h.recoverPanic("GetInventory", &resp)

	name := req.QueryStringParameters["name"]

	items := h.repo.List(ctx, inventory.ItemSearch{Name: name})
	if len(items) == 0 {
		return response(http.StatusNotFound, messageBody{Message: msgInventoryNotFound})
	}

	return response(http.StatusOK, itemsBody{Items: items})
}

// UpdateItem handles PUT /inventory/{id}
func (h *InventoryHandler) UpdateItem(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse) {
	defer h.record(ctx, "UpdateItem", time.Now(), &resp)
	defer h.recoverPanic("UpdateItem", &resp)

	id := req.PathParameters["id"]

	var payload itemPayload
	if err := json.Unmarshal([]byte(req.Body), &payload); err != nil {
		h.logger.Error("Failed to decode update request body",
			zap.String("id", id),
			zap.Error(err),
		)
		return response(http.StatusInternalServerError, messageBody{Message: msgSomethingWentWrong})
	}

	if err := utils.ValidateStruct(payload); err != nil {
		return response(http.StatusUnprocessableEntity, messageBody{Message: msgMissingFields})
	}

	// The not-found message interpolates the submitted name, not any
	// previously stored one.
	if item := h.repo.Get(ctx, inventory.ItemSearch{ID: id}); item == nil {
		return response(http.StatusNotFound, messageBody{
			Message: fmt.Sprintf("Item not found: %s", payload.Name),
		})
	}

	itemID := h.repo.Update(ctx, id, inventory.Item{
		Name:      payload.Name,
		Quantity:  payload.Quantity,
		UnitPrice: payload.UnitPrice,
	})
	if itemID == "" {
		return response(http.StatusBadRequest, messageBody{
			Message: "Failed to update an inventory item.",
		})
	}

	h.publish(ctx, domainevents.NewItemUpdated(itemID, payload.Name))

	return response(http.StatusOK, messageBody{
		Message: fmt.Sprintf("Successfully updated an inventory item: %s", itemID),
	})
}

// DeleteItem handles DELETE /inventory/{id}
func (h *InventoryHandler) DeleteItem(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse) {
	defer h.record(ctx, "DeleteItem", time.Now(), &resp)
	defer h.recoverPanic("DeleteItem", &resp)

	id := req.PathParameters["id"]

	if item := h.repo.Get(ctx, inventory.ItemSearch{ID: id}); item == nil {
		return response(http.StatusNotFound, messageBody{
			Message: fmt.Sprintf("Item not found: %s", id),
		})
	}

	itemID := h.repo.Delete(ctx, id)
	if itemID == "" {
		return response(http.StatusBadRequest, messageBody{
			Message: "Failed to delete an inventory item.",
		})
	}

	h.publish(ctx, domainevents.NewItemDeleted(itemID))

	return response(http.StatusOK, messageBody{
		Message: fmt.Sprintf("Successfully deleted an inventory item: %s", itemID),
	})
}

// publish sends a domain event when an event bus is configured. Publish
// failures are logged and never change the response.
func (h *InventoryHandler) publish(ctx context.Context, event domainevents.DomainEvent) {
	if h.bus == nil {
		return
	}
	if err := h.bus.Publish(ctx, event); err != nil {
		h.logger.Warn("Failed to publish domain event",
			zap.String("eventType", event.GetEventType()),
			zap.Error(err),
		)
	}
}

// record ships operation metrics; registered as a deferred call so it sees
// the final status code.
func (h *InventoryHandler) record(ctx context.Context, operation string, start time.Time, resp *events.APIGatewayProxyResponse) {
	h.metrics.RecordOperation(ctx, operation, resp.StatusCode, time.Since(start))
}

// recoverPanic converts any panic escaping a handler into the uniform 500
// envelope. No detail is exposed to the caller.
func (h *InventoryHandler) recoverPanic(operation string, resp *events.APIGatewayProxyResponse) {
	if rec := recover(); rec != nil {
		h.logger.Error("Handler panicked",
			zap.String("operation", operation),
			zap.Any("panic", rec),
		)
		*resp = response(http.StatusInternalServerError, messageBody{Message: msgSomethingWentWrong})
	}
}

// response builds the {statusCode, body} envelope with a JSON-encoded body.
func response(status int, data interface{}) events.APIGatewayProxyResponse {
	body, err := json.Marshal(data)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       `{"message":"Something went wrong."}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Body:       string(body),
	}
}
