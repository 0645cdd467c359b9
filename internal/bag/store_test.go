package bag

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonnmarcoo/Apple-store/internal/money"
)

func TestStore_LoadSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewFileStorage(t.TempDir()))

	b := Bag{}.Add(Product{ID: "p1", Name: "iPhone 15", Price: money.FromFloat(56990), Image: "assets/Products/iPhone/iPhone1.png"})
	b = b.Add(Product{ID: "p2", Name: "AirPods Pro", Price: money.FromFloat(13990)})
	b = b.SetQuantity("p1", 3)

	require.NoError(t, store.Save(ctx, b))
	loaded := store.Load(ctx)

	assert.Equal(t, b, loaded)
}

func TestStore_LoadMissing_ReturnsEmpty(t *testing.T) {
	store := NewStore(NewFileStorage(t.TempDir()))
	b := store.Load(context.Background())
	assert.Empty(t, b)
}

func TestStore_LoadCorrupt_ReturnsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, StorageKey+".json"), []byte("{not json"), 0o644))

	store := NewStore(NewFileStorage(dir))
	b := store.Load(context.Background())
	assert.Empty(t, b)
}

func TestStore_MutationsPersist(t *testing.T) {
	ctx := context.Background()
	storage := NewFileStorage(t.TempDir())
	store := NewStore(storage)

	b := store.Load(ctx)
	b, err := store.Add(ctx, b, Product{ID: "p1", Price: 1000})
	require.NoError(t, err)
	b, err = store.Add(ctx, b, Product{ID: "p2", Price: 2000})
	require.NoError(t, err)
	_, err = store.Remove(ctx, b, "p1")
	require.NoError(t, err)

	// a fresh Store over the same storage sees the persisted state
	reloaded := NewStore(storage).Load(ctx)
	require.Len(t, reloaded, 1)
	assert.Equal(t, "p2", reloaded[0].ProductID)
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	storage := NewFileStorage(t.TempDir())
	store := NewStore(storage)

	_, err := store.Add(ctx, Bag{}, Product{ID: "p1", Price: 1000})
	require.NoError(t, err)
	require.NoError(t, store.Clear(ctx))

	assert.Empty(t, store.Load(ctx))
	// clearing twice is fine
	assert.NoError(t, store.Clear(ctx))
}

func TestStore_LenientPriceInPersistedState(t *testing.T) {
	// prices stored as numeric strings or garbage must load, garbage as zero
	dir := t.TempDir()
	raw := `[{"_id":"p1","name":"iPad","price":"28990.50","quantity":2},
	         {"_id":"p2","name":"Mac","price":"oops","quantity":1}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, StorageKey+".json"), []byte(raw), 0o644))

	b := NewStore(NewFileStorage(dir)).Load(context.Background())
	require.Len(t, b, 2)
	assert.Equal(t, money.FromFloat(28990.50), b[0].Price)
	assert.Equal(t, money.Amount(0), b[1].Price)
	assert.Equal(t, money.FromFloat(57981), b.Total())
}

func setupRedisStorage(t *testing.T) *RedisStorage {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStorage(client, "user123")
}

func TestRedisStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(setupRedisStorage(t))

	b := Bag{}.Add(Product{ID: "p1", Name: "Watch Ultra", Price: money.FromFloat(47990)})
	require.NoError(t, store.Save(ctx, b))

	assert.Equal(t, b, store.Load(ctx))
}

func TestRedisStorage_MissingKey(t *testing.T) {
	storage := setupRedisStorage(t)
	_, err := storage.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStorage_Clear(t *testing.T) {
	ctx := context.Background()
	storage := setupRedisStorage(t)

	require.NoError(t, storage.Save(ctx, []byte(`[]`)))
	require.NoError(t, storage.Clear(ctx))

	_, err := storage.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
