package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Deshmaneparas/food-delivery-sys/internal/domain"
)

// SessionStore resolves bearer tokens to identities. Sessions are written
// by the external auth service; this side only needs lookup, plus Create
// for tooling and tests.
type SessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{Client: client, TTL: ttl}
}

func (s *SessionStore) sessionKey(token string) string {
	return "session:" + token
}

func (s *SessionStore) Verify(ctx context.Context, token string) (domain.Identity, error) {
	payload, err := s.Client.Get(ctx, s.sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Identity{}, fmt.Errorf("%w: unknown session token", domain.ErrUnauthorized)
	}
	if err != nil {
		return domain.Identity{}, fmt.Errorf("session lookup: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return domain.Identity{}, fmt.Errorf("%w: malformed session payload", domain.ErrUnauthorized)
	}
	return identity, nil
}

func (s *SessionStore) Create(ctx context.Context, token string, identity domain.Identity) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.sessionKey(token), payload, s.TTL).Err()
}
