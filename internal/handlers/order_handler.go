package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jmarlow/course-store/internal/models"
	"github.com/jmarlow/course-store/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	service *service.OrderService
	log     *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// orderCreatedResponse is the body returned on successful order placement
type orderCreatedResponse struct {
	Message string        `json:"message"`
	Order   *models.Order `json:"order"`
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrCustomerRequired) {
			h.log.Warn("order rejected", "reason", "missing customer fields")
			writeError(w, http.StatusBadRequest, "Customer name and email are required")
			return
		}

		h.log.Error("failed to create order", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, orderCreatedResponse{
		Message: "Order placed successfully",
		Order:   order,
	})
	h.log.Info("order created", "order_id", order.ID, "items_count", len(order.Items), "total", order.Total)
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, orders)
}
