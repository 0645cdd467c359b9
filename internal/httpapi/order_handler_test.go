package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/leonnmarcoo/Apple-store/internal/money"
	"github.com/leonnmarcoo/Apple-store/internal/orders"
	"github.com/leonnmarcoo/Apple-store/internal/session"
)

type orderServiceMock struct {
	created    *orders.Order
	createdFor string
	createErr  error
	byID       map[uuid.UUID]*orders.Order
	updateErr  error
	deleteErr  error
}

func (m *orderServiceMock) CreateOrder(_ context.Context, userID string, items []orders.OrderItem, total money.Amount) (*orders.Order, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.createdFor = userID
	m.created = &orders.Order{
		ID:     uuid.New(),
		UserID: userID,
		Items:  items,
		Total:  total,
		Status: orders.OrderStatusPending,
	}
	return m.created, nil
}

func (m *orderServiceMock) GetOrder(_ context.Context, id uuid.UUID) (*orders.Order, error) {
	order, ok := m.byID[id]
	if !ok {
		return nil, orders.ErrOrderNotFound
	}
	return order, nil
}

func (m *orderServiceMock) ListOrders(context.Context) ([]*orders.Order, error) {
	var list []*orders.Order
	for _, order := range m.byID {
		list = append(list, order)
	}
	return list, nil
}

func (m *orderServiceMock) UpdateStatus(_ context.Context, id uuid.UUID, status orders.OrderStatus) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	order, ok := m.byID[id]
	if !ok {
		return orders.ErrOrderNotFound
	}
	order.Status = status
	return nil
}

func (m *orderServiceMock) DeleteOrder(_ context.Context, id uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.byID[id]; !ok {
		return orders.ErrOrderNotFound
	}
	delete(m.byID, id)
	return nil
}

func TestCreateOrder_Success(t *testing.T) {
	mock := &orderServiceMock{}
	handler := NewOrderHandler(mock, 5*time.Second)

	body := `{"products":[{"productId":"p1","name":"iPhone 15","price":56990,"quantity":1,"image":"iphone.jpg"}],"total":56990}`
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/api/orders", strings.NewReader(body))

	handler.CreateOrder(recorder, request)

	if recorder.Code != http.StatusCreated {
		t.Errorf("Expected status code %d, got %d", http.StatusCreated, recorder.Code)
	}

	var response OrderCreatedResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.OrderID != mock.created.ID.String() {
		t.Errorf("Expected orderId %q, got %q", mock.created.ID, response.OrderID)
	}
	if mock.createdFor != "" {
		t.Errorf("Expected guest order, got userID %q", mock.createdFor)
	}
}

func TestCreateOrder_WithSession(t *testing.T) {
	mock := &orderServiceMock{}
	handler := NewOrderHandler(mock, 5*time.Second)

	body := `{"products":[{"productId":"p1","name":"iPad Air","price":37990,"quantity":2,"image":"ipad.jpg"}],"total":75980}`
	request := httptest.NewRequest("POST", "/api/orders", strings.NewReader(body))
	request = request.WithContext(ContextWithSession(request.Context(), &session.Session{UserID: "u-42", Username: "marco"}))
	recorder := httptest.NewRecorder()

	handler.CreateOrder(recorder, request)

	if recorder.Code != http.StatusCreated {
		t.Errorf("Expected status code %d, got %d", http.StatusCreated, recorder.Code)
	}
	if mock.createdFor != "u-42" {
		t.Errorf("Expected order for u-42, got %q", mock.createdFor)
	}
}

func TestCreateOrder_EmptyProducts(t *testing.T) {
	mock := &orderServiceMock{createErr: orders.ErrNoProducts}
	handler := NewOrderHandler(mock, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/api/orders", strings.NewReader(`{"products":[],"total":0}`))

	handler.CreateOrder(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestCreateOrder_InvalidBody(t *testing.T) {
	handler := NewOrderHandler(&orderServiceMock{}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/api/orders", strings.NewReader("not json"))

	handler.CreateOrder(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	handler := NewOrderHandler(&orderServiceMock{byID: map[uuid.UUID]*orders.Order{}}, 5*time.Second)

	id := uuid.New()
	recorder := httptest.NewRecorder()
	request := withURLParam(httptest.NewRequest("GET", "/api/orders/"+id.String(), nil), "id", id.String())

	handler.GetOrder(recorder, request)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected status code %d, got %d", http.StatusNotFound, recorder.Code)
	}
}

func TestGetOrder_InvalidID(t *testing.T) {
	handler := NewOrderHandler(&orderServiceMock{}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := withURLParam(httptest.NewRequest("GET", "/api/orders/nope", nil), "id", "nope")

	handler.GetOrder(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Error != "invalid order id" {
		t.Errorf("Unexpected error message: %q", response.Error)
	}
}

func TestUpdateStatus_Success(t *testing.T) {
	id := uuid.New()
	mock := &orderServiceMock{byID: map[uuid.UUID]*orders.Order{
		id: {ID: id, Status: orders.OrderStatusPending},
	}}
	handler := NewOrderHandler(mock, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := withURLParam(
		httptest.NewRequest("PUT", "/api/orders/"+id.String(), strings.NewReader(`{"status":"Shipped"}`)),
		"id", id.String(),
	)

	handler.UpdateStatus(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	if mock.byID[id].Status != orders.OrderStatusShipped {
		t.Errorf("Expected status Shipped, got %s", mock.byID[id].Status)
	}
}

func TestUpdateStatus_Invalid(t *testing.T) {
	mock := &orderServiceMock{updateErr: orders.ErrInvalidStatus}
	handler := NewOrderHandler(mock, 5*time.Second)

	id := uuid.New()
	recorder := httptest.NewRecorder()
	request := withURLParam(
		httptest.NewRequest("PUT", "/api/orders/"+id.String(), strings.NewReader(`{"status":"Teleported"}`)),
		"id", id.String(),
	)

	handler.UpdateStatus(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestDeleteOrder_Success(t *testing.T) {
	id := uuid.New()
	mock := &orderServiceMock{byID: map[uuid.UUID]*orders.Order{
		id: {ID: id, Status: orders.OrderStatusPending},
	}}
	handler := NewOrderHandler(mock, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := withURLParam(httptest.NewRequest("DELETE", "/api/orders/"+id.String(), nil), "id", id.String())

	handler.DeleteOrder(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	if _, ok := mock.byID[id]; ok {
		t.Error("Expected order to be deleted")
	}
}

func TestListOrders_Empty(t *testing.T) {
	handler := NewOrderHandler(&orderServiceMock{}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/orders", nil)

	handler.ListOrders(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	if body := strings.TrimSpace(recorder.Body.String()); body != "[]" {
		t.Errorf("Expected empty array, got %q", body)
	}
}
