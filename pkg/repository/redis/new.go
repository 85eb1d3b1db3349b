package redis

import (
	"github.com/redis/go-redis/v9"

	"play-economy/pkg/repository"
)

const keyPrefix = "collection:"

type implRepository[T repository.Entity] struct {
	client *redis.Client
	key    string
}

// New creates a Redis-backed Repository storing every document of the collection as a
// JSON value in one hash, keyed by entity id.
func New[T repository.Entity](client *redis.Client, collection string) repository.Repository[T] {
	if client == nil {
		panic("repository/redis: client is required")
	}
	return &implRepository[T]{client: client, key: keyPrefix + collection}
}
