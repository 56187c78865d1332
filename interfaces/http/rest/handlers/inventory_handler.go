// Package handlers adapts the envelope-producing inventory handlers to the
// chi HTTP server, so the REST and Lambda surfaces share one code path.
package handlers

import (
	"io"
	"net/http"

	lambdahandlers "inventory-backend/interfaces/lambda/handlers"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// InventoryHandler handles inventory-related HTTP requests
type InventoryHandler struct {
	core   *lambdahandlers.InventoryHandler
	logger *zap.Logger
}

// NewInventoryHandler creates a new inventory HTTP handler
func NewInventoryHandler(core *lambdahandlers.InventoryHandler, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		core:   core,
		logger: logger,
	}
}

// CreateItem handles POST /inventory
func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	req, ok := h.proxyRequest(w, r)
	if !ok {
		return
	}
	h.writeResponse(w, h.core.CreateItem(r.Context(), req))
}

// GetInventory handles GET /inventory
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	req, ok := h.proxyRequest(w, r)
	if !ok {
		return
	}
	h.writeResponse(w, h.core.GetInventory(r.Context(), req))
}

// UpdateItem handles PUT /inventory/{id}
func (h *InventoryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	req, ok := h.proxyRequest(w, r)
	if !ok {
		return
	}
	h.writeResponse(w, h.core.UpdateItem(r.Context(), req))
}

// DeleteItem handles DELETE /inventory/{id}
func (h *InventoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	req, ok := h.proxyRequest(w, r)
	if !ok {
		return
	}
	h.writeResponse(w, h.core.DeleteItem(r.Context(), req))
}

// proxyRequest normalizes an HTTP request into the proxy-event shape the
// core handlers consume: raw body, chi path parameters, query parameters.
func (h *InventoryHandler) proxyRequest(w http.ResponseWriter, r *http.Request) (events.APIGatewayProxyRequest, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("Failed to read request body", zap.Error(err))
		h.writeResponse(w, events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       `{"message":"Something went wrong."}`,
		})
		return events.APIGatewayProxyRequest{}, false
	}

	req := events.APIGatewayProxyRequest{
		Body:                  string(body),
		PathParameters:        map[string]string{},
		QueryStringParameters: map[string]string{},
	}
	if id := chi.URLParam(r, "id"); id != "" {
		req.PathParameters["id"] = id
	}
	if name := r.URL.Query().Get("name"); name != "" {
		req.QueryStringParameters["name"] = name
	}

	return req, true
}

// writeResponse renders the {statusCode, body} envelope onto the wire.
func (h *InventoryHandler) writeResponse(w http.ResponseWriter, resp events.APIGatewayProxyResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	if _, err := w.Write([]byte(resp.Body)); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
