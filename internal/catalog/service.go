package catalog

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/singleflight"
)

// Service serves catalog reads with a cache-aside layer over the document
// store.
type Service struct {
	repo  Repository
	cache ProductCache
	sfg   singleflight.Group // Prevents cache stampede per category
}

func NewService(repo Repository, cache ProductCache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

// GetProducts returns the products of one category (or all, for an empty
// type). Concurrent cache misses for the same category collapse into a
// single repository query.
func (s *Service) GetProducts(ctx context.Context, productType string) ([]Product, error) {
	v, err, _ := s.sfg.Do(productType, func() (interface{}, error) {
		products, err := s.cache.Get(ctx, productType)
		if err == nil {
			return products, nil
		}

		if !errors.Is(err, ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		products, errGet := s.repo.GetProducts(ctx, productType)
		if errGet != nil {
			return nil, errGet
		}

		go func() {
			if errSet := s.cache.Set(context.Background(), productType, products); errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return products, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]Product), nil
}

// GetProduct fetches a single product straight from the store; single-item
// reads are rare enough that they skip the cache.
func (s *Service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}
