package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps the same key-value contract on a redis server, for setups
// where the shop data should outlive the host machine.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

func OpenRedis(ctx context.Context, addr, password, prefix string) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{rdb: rdb, prefix: prefix}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string, dest any) error {
	b, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(b, dest)
}

func (s *RedisStore) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.prefix+key, b, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.prefix+key).Err()
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

var _ Store = (*RedisStore)(nil)
