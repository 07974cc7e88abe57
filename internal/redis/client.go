// Package redis provides a wrapper around the go-redis client library
// for improved testing and abstraction.
package redis

import (
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior.
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
}

// NewClient creates a Redis client for a single instance. Connection is lazy;
// failures surface on first use.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClient(&redis.Options{
		Addr:            endpoint,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}), nil
}
