// cache.go
//
// A catalog data service for industrial plastic materials
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of materialsdb.
// materialsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// materialsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with materialsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package cache is a read-through JSON cache for catalog reads.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/localnerve/materialsdb/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "materialsdb:"

// Cache stores JSON-encoded values by key
type Cache interface {
	// Get decodes the cached value into dest and reports whether it was found
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

// New returns a Redis cache when REDIS_URL is configured and a no-op cache otherwise
func New(cfg *config.Config) (Cache, error) {
	if cfg.RedisURL == "" {
		return Nop{}, nil
	}
	return NewRedis(cfg.RedisURL, cfg.CacheTTL)
}

// Redis is a Cache backed by a go-redis client
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates and validates a go-redis client connection.
func NewRedis(redisURL string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Redis{client: client, ttl: ttl}, nil
}

// Get implements Cache. Misses and decode failures both report false.
func (r *Redis) Get(ctx context.Context, key string, dest interface{}) bool {
	val, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		}
		return false
	}

	if err := json.Unmarshal(val, dest); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache entry undecodable")
		return false
	}
	return true
}

// Set implements Cache
func (r *Redis) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, keyPrefix+key, data, r.ttl).Err()
}

// Delete implements Cache
func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = keyPrefix + k
	}
	return r.client.Del(ctx, prefixed...).Err()
}

// Ping implements Cache
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the client
func (r *Redis) Close() error {
	return r.client.Close()
}

// Nop never stores anything
type Nop struct{}

func (Nop) Get(context.Context, string, interface{}) bool  { return false }
func (Nop) Set(context.Context, string, interface{}) error { return nil }
func (Nop) Delete(context.Context, ...string) error        { return nil }
func (Nop) Ping(context.Context) error                     { return nil }

// Unavailable stands in for a configured cache that could not be reached.
// It stores nothing and reports the connect error from Ping.
type Unavailable struct {
	Err error
}

func (Unavailable) Get(context.Context, string, interface{}) bool  { return false }
func (Unavailable) Set(context.Context, string, interface{}) error { return nil }
func (Unavailable) Delete(context.Context, ...string) error        { return nil }
func (u Unavailable) Ping(context.Context) error                   { return u.Err }
