package tests

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/Deshmaneparas/food-delivery-sys/internal/domain"
	"github.com/Deshmaneparas/food-delivery-sys/internal/storage"
)

func newSessionStore(t *testing.T) (*storage.SessionStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewSessionStore(client, time.Hour), mr
}

func TestSessionStore_Roundtrip(t *testing.T) {
	store, _ := newSessionStore(t)
	ctx := context.Background()

	identity := domain.Identity{ID: 100, Role: domain.RoleCustomer}
	assert.NoError(t, store.Create(ctx, "tok-abc", identity))

	got, err := store.Verify(ctx, "tok-abc")
	assert.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestSessionStore_UnknownToken(t *testing.T) {
	store, _ := newSessionStore(t)

	_, err := store.Verify(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessionStore_MalformedPayload(t *testing.T) {
	store, mr := newSessionStore(t)
	mr.Set("session:tok-bad", "not json")

	_, err := store.Verify(context.Background(), "tok-bad")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessionStore_ExpiredToken(t *testing.T) {
	store, mr := newSessionStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Create(ctx, "tok-old", domain.Identity{ID: 1, Role: domain.RoleCustomer}))
	mr.FastForward(2 * time.Hour)

	_, err := store.Verify(ctx, "tok-old")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
