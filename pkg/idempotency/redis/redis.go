// Package redis implements an idempotency store backed by Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"biltiflow/pkg/idempotency"
)

const keyPrefix = "idempotency:"

// Store keeps records as JSON strings with a Redis expiry.
type Store struct {
	client redis.Cmdable
}

// New creates a Redis-backed store.
func New(client redis.Cmdable) *Store {
	return &Store{client: client}
}

// Get returns the record stored under key; a missing key is not an error.
func (s *Store) Get(ctx context.Context, key string) (idempotency.Record, bool, error) {
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return idempotency.Record{}, false, nil
	}
	if err != nil {
		return idempotency.Record{}, false, fmt.Errorf("redis get: %w", err)
	}
	var rec idempotency.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return idempotency.Record{}, false, fmt.Errorf("decode record: %w", err)
	}
	return rec, true, nil
}

// Put stores rec under key with a Redis expiry of ttl.
func (s *Store) Put(ctx context.Context, key string, rec idempotency.Record, ttl time.Duration) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
