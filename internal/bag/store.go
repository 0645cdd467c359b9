package bag

import (
	"context"
	"encoding/json"
	"errors"
	"log"
)

// StorageKey is the name the bag is persisted under, shared by every Storage
// implementation so a bag written by one can be read by another.
const StorageKey = "appleBag"

// ErrNotFound is returned by a Storage when no bag has been persisted yet.
var ErrNotFound = errors.New("bag not found")

// Storage persists the serialized bag. Implementations store the raw JSON
// array; they never interpret it.
type Storage interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}

// Store owns bag persistence. Every mutating operation rewrites the whole
// bag; there are no partial writes or merges.
type Store struct {
	storage Storage
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Load reads the persisted bag. A missing key or a payload that fails to
// parse both yield an empty bag; corrupt state is not an error.
func (s *Store) Load(ctx context.Context) Bag {
	data, err := s.storage.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("bag load error: %v", err)
		}
		return Bag{}
	}

	var b Bag
	if err := json.Unmarshal(data, &b); err != nil {
		log.Printf("bag state corrupt, starting empty: %v", err)
		return Bag{}
	}
	return b
}

// Save serializes and persists the full bag, overwriting prior state.
func (s *Store) Save(ctx context.Context, b Bag) error {
	if b == nil {
		b = Bag{}
	}
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return s.storage.Save(ctx, data)
}

// Add applies Bag.Add and persists the result.
func (s *Store) Add(ctx context.Context, b Bag, p Product) (Bag, error) {
	out := b.Add(p)
	return out, s.Save(ctx, out)
}

// Remove applies Bag.Remove and persists the result.
func (s *Store) Remove(ctx context.Context, b Bag, productID string) (Bag, error) {
	out := b.Remove(productID)
	return out, s.Save(ctx, out)
}

// SetQuantity applies Bag.SetQuantity and persists the result.
func (s *Store) SetQuantity(ctx context.Context, b Bag, productID string, quantity int) (Bag, error) {
	out := b.SetQuantity(productID, quantity)
	return out, s.Save(ctx, out)
}

// Clear removes the persisted bag entirely.
func (s *Store) Clear(ctx context.Context) error {
	return s.storage.Clear(ctx)
}
