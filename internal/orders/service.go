package orders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/leonnmarcoo/Apple-store/internal/money"
)

var (
	ErrNoProducts      = errors.New("order has no products")
	ErrInvalidQuantity = errors.New("order item quantity must be positive")
	ErrInvalidStatus   = errors.New("invalid order status")
)

// Service owns the order lifecycle: creation from a checkout request, the
// admin listing, status updates, and deletion.
type Service struct {
	repo   OrderRepository
	events EventPublisher // nil when event publishing is disabled
}

func NewService(repo OrderRepository, events EventPublisher) *Service {
	return &Service{
		repo:   repo,
		events: events,
	}
}

// CreateOrder persists a new pending order. userID is empty for guest
// checkouts. The submitted total is stored as-is; it is the price the buyer
// confirmed.
func (s *Service) CreateOrder(ctx context.Context, userID string, items []OrderItem, total money.Amount) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrNoProducts
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: product %s", ErrInvalidQuantity, item.ProductID)
		}
	}

	now := time.Now()
	order := &Order{
		ID:        uuid.New(),
		UserID:    userID,
		Items:     items,
		Total:     total,
		Status:    OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.publish("order.created", order)
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (*Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.ListOrders(ctx)
}

// UpdateStatus moves an order to a new status after validating the value.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.publish("order.status_changed", &Order{ID: id, Status: status})
	return nil
}

func (s *Service) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteOrder(ctx, id)
}

// publish sends an event best-effort; order persistence never waits on the
// broker.
func (s *Service) publish(eventType string, order *Order) {
	if s.events == nil {
		return
	}

	event := OrderEvent{
		EventType:  eventType,
		OrderID:    order.ID.String(),
		UserID:     order.UserID,
		Status:     order.Status.String(),
		Total:      order.Total,
		OccurredAt: time.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.events.Publish(ctx, event); err != nil {
			log.Printf("order event publish error: %v", err)
		}
	}()
}
