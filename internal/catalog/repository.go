package catalog

import (
	"context"
	"errors"
)

var ErrProductNotFound = errors.New("product not found")

// Repository is the narrow interface to the external document store holding
// the catalog. Consumers define this interface, not the MongoDB
// implementation.
type Repository interface {
	// GetProducts returns products, newest first, optionally filtered by
	// category. An empty productType means all categories.
	GetProducts(ctx context.Context, productType string) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
}
