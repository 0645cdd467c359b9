package catalog

import (
	"context"
	"errors"
)

// ProductCache caches category listings between the HTTP layer and the
// document store.
type ProductCache interface {
	Get(ctx context.Context, productType string) ([]Product, error)
	Set(ctx context.Context, productType string, products []Product) error
	Delete(ctx context.Context, productType string) error
}

var ErrCacheMiss = errors.New("cache miss")
