// Package bag implements the client-local shopping bag: a small ordered
// collection of line items keyed by product id, persisted between runs.
package bag

import (
	"github.com/leonnmarcoo/Apple-store/internal/money"
)

// Product is the catalog snapshot captured when an item enters the bag. The
// price is frozen at add time and is not refreshed from the catalog.
type Product struct {
	ID    string       `json:"_id"`
	Name  string       `json:"name"`
	Price money.Amount `json:"price"`
	Image string       `json:"image"`
}

// LineItem is one product entry in the bag. Quantity is at least 1 while the
// item exists; mutations that would drop it to 0 remove the item instead.
type LineItem struct {
	ProductID string       `json:"_id"`
	Name      string       `json:"name"`
	Price     money.Amount `json:"price"`
	Image     string       `json:"image"`
	Quantity  int          `json:"quantity"`
}

// Bag is an ordered list of line items with unique product ids. All
// operations are pure: they return a new Bag and never touch storage.
type Bag []LineItem

func (b Bag) clone() Bag {
	out := make(Bag, len(b))
	copy(out, b)
	return out
}

// Add increments the quantity when the product is already present, keeping
// the snapshot captured on the first add. Otherwise it appends a new line
// item with quantity 1.
func (b Bag) Add(p Product) Bag {
	out := b.clone()
	for i := range out {
		if out[i].ProductID == p.ID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
}

// Remove deletes the line item with the given product id. Removing an absent
// id is a no-op.
func (b Bag) Remove(productID string) Bag {
	out := make(Bag, 0, len(b))
	for _, item := range b {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	return out
}

// SetQuantity overwrites the quantity of an existing line item. A quantity of
// 0 or below removes the item. Absent ids are a no-op.
func (b Bag) SetQuantity(productID string, quantity int) Bag {
	if quantity <= 0 {
		return b.Remove(productID)
	}
	out := b.clone()
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity = quantity
			break
		}
	}
	return out
}

// Contains reports whether the product id is in the bag.
func (b Bag) Contains(productID string) bool {
	for _, item := range b {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// Total sums price*quantity over all items.
func (b Bag) Total() money.Amount {
	var total money.Amount
	for _, item := range b {
		total += item.Price.Mul(item.Quantity)
	}
	return total
}
