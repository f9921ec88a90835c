package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions as JSON strings under "<prefix>:<id>" with a TTL
// equal to the session lifetime, so Redis expires them on its own.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore returns a store backed by rdb.
func NewRedisStore(rdb *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "sess"
	}
	return &RedisStore{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (r *RedisStore) key(id string) string { return r.prefix + ":" + id }

func (r *RedisStore) TTL() time.Duration { return r.ttl }

func (r *RedisStore) Create(ctx context.Context, userID uint64, isAdmin bool) (*Session, error) {
	s := newSession(userID, isAdmin, time.Now(), r.ttl)
	payload, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	if err := r.rdb.Set(ctx, r.key(s.ID), payload, r.ttl).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return s, nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	bs, err := r.rdb.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var s Session
	if err := json.Unmarshal(bs, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Destroy(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, r.key(id)).Err()
}
