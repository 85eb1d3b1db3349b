package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"play-economy/config"
)

// Connect creates a client and verifies it with a ping.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// Disconnect closes the client.
func Disconnect(client *redis.Client) {
	if client != nil {
		client.Close()
	}
}
