package settings

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// KeyRecipientEmail is where the low-stock alert recipient is stored.
const KeyRecipientEmail = "settings:recipient_email"

// Store is a redis-backed key-value settings store. A missing key reads as
// the empty string, not an error.
type Store struct {
	rdb *redis.Client
	ctx context.Context
}

func NewStore(rdb *redis.Client, ctx context.Context) *Store {
	return &Store{rdb: rdb, ctx: ctx}
}

func (s *Store) Get(key string) (string, error) {
	val, err := s.rdb.Get(s.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (s *Store) Set(key, value string) error {
	return s.rdb.Set(s.ctx, key, value, 0).Err()
}
