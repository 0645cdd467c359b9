// Package checkout turns the current bag contents into a submitted order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/leonnmarcoo/Apple-store/internal/bag"
	"github.com/leonnmarcoo/Apple-store/internal/money"
)

// Status tracks where a checkout attempt is in its lifecycle.
type Status string

const (
	StatusIdle       Status = "IDLE"
	StatusValidating Status = "VALIDATING"
	StatusSubmitting Status = "SUBMITTING"
	StatusSucceeded  Status = "SUCCEEDED"
	StatusFailed     Status = "FAILED"
)

func (s Status) IsTerminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

var (
	ErrEmptyBag = errors.New("bag is empty")
	ErrInFlight = errors.New("checkout already in flight")
)

// OrderItem is one line of the order-creation request.
type OrderItem struct {
	ProductID string       `json:"productId"`
	Name      string       `json:"name"`
	Price     money.Amount `json:"price"`
	Quantity  int          `json:"quantity"`
	Image     string       `json:"image"`
}

// OrderRequest is the payload submitted to the order service.
type OrderRequest struct {
	Products []OrderItem  `json:"products"`
	Total    money.Amount `json:"total"`
}

// BuildOrderRequest derives the order payload from a bag.
func BuildOrderRequest(b bag.Bag) OrderRequest {
	items := make([]OrderItem, 0, len(b))
	for _, li := range b {
		items = append(items, OrderItem{
			ProductID: li.ProductID,
			Name:      li.Name,
			Price:     li.Price,
			Quantity:  li.Quantity,
			Image:     li.Image,
		})
	}
	return OrderRequest{Products: items, Total: b.Total()}
}

// OrderPlacer submits one order-creation request and returns the new order
// id. Consumers define this interface, not the HTTP client.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req OrderRequest) (string, error)
}

// Coordinator performs the one-shot bag-to-order transition. The bag is
// cleared only after the order service confirms; any failure leaves it
// untouched and a retry is simply a fresh Checkout call.
type Coordinator struct {
	store  *bag.Store
	orders OrderPlacer

	inFlight atomic.Bool
	mu       sync.Mutex
	status   Status
}

func NewCoordinator(store *bag.Store, orders OrderPlacer) *Coordinator {
	return &Coordinator{store: store, orders: orders, status: StatusIdle}
}

// Status returns the state of the most recent checkout attempt.
func (c *Coordinator) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Coordinator) setStatus(s Status) {
	c.mu.Lock()
	c.status = s
	c.mu.Unlock()
}

// Checkout validates the bag, submits exactly one order request, and on
// success clears the persisted bag and returns the order id. A second call
// while one is in flight fails with ErrInFlight rather than issuing a
// duplicate order.
func (c *Coordinator) Checkout(ctx context.Context) (string, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return "", ErrInFlight
	}
	defer c.inFlight.Store(false)

	c.setStatus(StatusValidating)
	b := c.store.Load(ctx)
	if len(b) == 0 {
		c.setStatus(StatusIdle)
		return "", ErrEmptyBag
	}

	c.setStatus(StatusSubmitting)
	orderID, err := c.orders.PlaceOrder(ctx, BuildOrderRequest(b))
	if err != nil {
		c.setStatus(StatusFailed)
		return "", fmt.Errorf("place order: %w", err)
	}

	if err := c.store.Clear(ctx); err != nil {
		// the order exists; a stale local bag is the lesser problem
		log.Printf("bag clear after checkout failed: %v", err)
	}

	c.setStatus(StatusSucceeded)
	return orderID, nil
}
