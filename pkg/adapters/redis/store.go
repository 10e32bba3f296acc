package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/tripwizard/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.Store using a Redis hash per namespace (usually a session ID).
// With a TTL, every write refreshes the expiry, so idle sessions vanish like a closed tab.
type Store struct {
	client    *backend.Client
	prefix    string
	namespace string
	ttl       time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for the namespace.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, namespace string, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, namespace, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, namespace string, opts ...Option) *Store {
	store := &Store{
		client:    client,
		prefix:    "tripwizard:session:",
		namespace: namespace,
		ttl:       0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key() string {
	return s.prefix + s.namespace
}

// Get retrieves a field from the namespace hash.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.HGet(ctx, s.key(), key).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return "", domain.ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get from redis: %w", err)
	}
	return val, nil
}

// Set writes a field and refreshes the TTL.
func (s *Store) Set(ctx context.Context, key, value string) error {
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, s.key(), key, value)
	if s.ttl > 0 {
		pipe.Expire(ctx, s.key(), s.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Delete removes a field.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.HDel(ctx, s.key(), key).Err(); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}

// Clear removes the whole namespace.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key()).Err(); err != nil {
		return fmt.Errorf("failed to clear redis namespace: %w", err)
	}
	return nil
}

// Keys lists the fields of the namespace.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	keys, err := s.client.HKeys(ctx, s.key()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list redis keys: %w", err)
	}
	return keys, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
