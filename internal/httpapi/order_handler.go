package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/leonnmarcoo/Apple-store/internal/money"
	"github.com/leonnmarcoo/Apple-store/internal/orders"
)

// OrderService is what the order endpoints need from the orders layer.
type OrderService interface {
	CreateOrder(ctx context.Context, userID string, items []orders.OrderItem, total money.Amount) (*orders.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*orders.Order, error)
	ListOrders(ctx context.Context) ([]*orders.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status orders.OrderStatus) error
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}

type OrderHandler struct {
	orders  OrderService
	timeout time.Duration
}

func NewOrderHandler(orders OrderService, timeout time.Duration) *OrderHandler {
	return &OrderHandler{
		orders:  orders,
		timeout: timeout,
	}
}

type CreateOrderRequestDTO struct {
	Products []orders.OrderItem `json:"products"`
	Total    money.Amount       `json:"total"`
}

type OrderCreatedResponseDTO struct {
	OrderID string `json:"orderId"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status"`
}

// POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var userID string
	if sess := sessionFromContext(r.Context()); sess != nil {
		userID = sess.UserID
	}

	order, err := h.orders.CreateOrder(ctx, userID, req.Products, req.Total)
	if err != nil {
		if errors.Is(err, orders.ErrNoProducts) || errors.Is(err, orders.ErrInvalidQuantity) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("error creating order: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	respondJSON(w, http.StatusCreated, OrderCreatedResponseDTO{OrderID: order.ID.String()})
}

// GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	list, err := h.orders.ListOrders(ctx)
	if err != nil {
		log.Printf("error listing orders: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if list == nil {
		list = []*orders.Order{}
	}

	respondJSON(w, http.StatusOK, list)
}

// GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := orderID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "Order not found")
			return
		}
		log.Printf("error fetching order %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch order")
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// PUT /api/orders/{id}
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := orderID(w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	err := h.orders.UpdateStatus(ctx, id, orders.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrInvalidStatus):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, orders.ErrOrderNotFound):
			respondError(w, http.StatusNotFound, "Order not found")
		default:
			log.Printf("error updating order %s: %v", id, err)
			respondError(w, http.StatusInternalServerError, "Failed to update order")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Order status updated successfully"})
}

// DELETE /api/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := orderID(w, r)
	if !ok {
		return
	}

	if err := h.orders.DeleteOrder(ctx, id); err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "Order not found")
			return
		}
		log.Printf("error deleting order %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}

func orderID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return uuid.Nil, false
	}
	return id, true
}
