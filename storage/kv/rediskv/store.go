package rediskv

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/trezcool/gradebook/core"
)

// Store keeps values in redis so several processes can share one roster.
type Store struct {
	client *redis.Client
}

var _ core.KVStore = (*Store)(nil) // interface compliance check

// Open connects to redis and checks the connection.
func Open(ctx context.Context, conf core.RedisConfig) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "connecting to redis at %s", conf.Addr)
	}
	return &Store{client: client}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", core.ErrKeyNotFound
		}
		return "", errors.Wrapf(err, "reading %q", key)
	}
	return val, nil
}

// Set writes the value without expiration.
func (s *Store) Set(ctx context.Context, key, value string) error {
	return errors.Wrapf(s.client.Set(ctx, key, value, 0).Err(), "writing %q", key)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(s.client.Del(ctx, key).Err(), "deleting %q", key)
}

func (s *Store) Close() error {
	return s.client.Close()
}
