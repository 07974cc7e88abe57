package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient to allow for easy mocking.
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for batch operations.
type Pipeliner interface {
	redis.Pipeliner
}
