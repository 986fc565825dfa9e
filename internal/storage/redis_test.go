package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"tastybites/internal/domain"
)

func setupTestRedis(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, time.Minute, time.Minute)
}

func TestRedisStore_Sessions(t *testing.T) {
	ctx := context.Background()
	store := setupTestRedis(t)

	assert.NoError(t, store.SaveSession(ctx, "tok-1", 42))

	userID, err := store.SessionUserID(ctx, "tok-1")
	assert.NoError(t, err)
	assert.Equal(t, 42, userID)

	// unknown tokens resolve to no identity, not an error
	userID, err = store.SessionUserID(ctx, "tok-unknown")
	assert.NoError(t, err)
	assert.Equal(t, 0, userID)

	assert.NoError(t, store.DeleteSession(ctx, "tok-1"))
	userID, err = store.SessionUserID(ctx, "tok-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, userID)
}

func TestRedisStore_CartRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := setupTestRedis(t)

	// a session with no stored cart gets an empty one
	cart, err := store.GetCart(ctx, "s1")
	assert.NoError(t, err)
	assert.NotNil(t, cart)
	assert.Empty(t, cart.Entries)

	cart.Entries = append(cart.Entries, domain.CartEntry{
		ItemID: 1, Name: "Burger", Price: 10, Quantity: 2,
	})
	assert.NoError(t, store.SaveCart(ctx, "s1", cart))

	loaded, err := store.GetCart(ctx, "s1")
	assert.NoError(t, err)
	assert.Len(t, loaded.Entries, 1)
	assert.Equal(t, 20.0, loaded.Total())

	assert.NoError(t, store.DeleteCart(ctx, "s1"))
	cleared, err := store.GetCart(ctx, "s1")
	assert.NoError(t, err)
	assert.Empty(t, cleared.Entries)
}

func TestRedisStore_FeedbackMarker(t *testing.T) {
	ctx := context.Background()
	store := setupTestRedis(t)

	key := store.FeedbackMarkerKey(7)
	assert.Equal(t, "feedback:7", key)

	exists, err := store.Exists(ctx, key)
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, store.SetMarker(ctx, key))

	exists, err = store.Exists(ctx, key)
	assert.NoError(t, err)
	assert.True(t, exists)
}
