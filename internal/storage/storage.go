package storage

import (
	"context"
	"fmt"
	"sync"

	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"play-economy/config"
	mongoConn "play-economy/config/mongo"
	redisConn "play-economy/config/redis"
	"play-economy/pkg/log"
	"play-economy/pkg/repository"
	"play-economy/pkg/repository/memory"
	mongoRepo "play-economy/pkg/repository/mongo"
	redisRepo "play-economy/pkg/repository/redis"
)

// Backend is the document store selected by storage.driver.
type Backend struct {
	driver string
	l      log.Logger

	mongoClient *mongo.Client
	mongoDB     *mongo.Database
	redisClient *goredis.Client

	mu       sync.Mutex
	inMemory map[string]any
}

// Open connects to the configured store.
func Open(ctx context.Context, cfg *config.Config, l log.Logger) (*Backend, error) {
	b := &Backend{
		driver:   cfg.Storage.Driver,
		l:        l,
		inMemory: make(map[string]any),
	}

	switch cfg.Storage.Driver {
	case config.DriverMongo:
		client, err := mongoConn.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		b.mongoClient = client
		b.mongoDB = client.Database(cfg.Mongo.Database)
	case config.DriverRedis:
		client, err := redisConn.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		b.redisClient = client
	case config.DriverMemory:
		l.Warn(ctx, "storage driver memory: data is lost on restart and not shared between processes")
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	l.Infof(ctx, "storage driver: %s", cfg.Storage.Driver)
	return b, nil
}

// Collection returns the repository for one entity collection.
func Collection[T repository.Entity](b *Backend, name string) repository.Repository[T] {
	switch b.driver {
	case config.DriverMongo:
		return mongoRepo.New[T](b.mongoDB, name)
	case config.DriverRedis:
		return redisRepo.New[T](b.redisClient, name)
	default:
		b.mu.Lock()
		defer b.mu.Unlock()
		if repo, ok := b.inMemory[name].(repository.Repository[T]); ok {
			return repo
		}
		repo := memory.New[T]()
		b.inMemory[name] = repo
		return repo
	}
}

// EnsureUniqueIndex declares a unique compound key where the store supports it.
// The memory and redis adapters serialize Increment themselves and need no index.
func (b *Backend) EnsureUniqueIndex(ctx context.Context, collection string, fields ...string) error {
	if b.driver != config.DriverMongo {
		return nil
	}
	return mongoRepo.EnsureUniqueIndex(ctx, b.mongoDB, collection, fields...)
}

// Ping reports whether the store answers.
func (b *Backend) Ping(ctx context.Context) error {
	switch b.driver {
	case config.DriverMongo:
		return b.mongoClient.Ping(ctx, nil)
	case config.DriverRedis:
		return b.redisClient.Ping(ctx).Err()
	default:
		return nil
	}
}

// Close releases the store connection.
func (b *Backend) Close(ctx context.Context) {
	switch b.driver {
	case config.DriverMongo:
		mongoConn.Disconnect(ctx, b.mongoClient)
	case config.DriverRedis:
		redisConn.Disconnect(b.redisClient)
	}
}
