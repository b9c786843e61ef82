package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"movie-master/internal/data/entity"
	"movie-master/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "movie:"

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedis(config utils.RedisConfig, log *zap.Logger) (MovieCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info("Movie cache connected", zap.String("addr", config.Addr))

	return &redisCache{
		client: client,
		ttl:    config.TTL,
		log:    log.With(zap.String("cache", "movie")),
	}, nil
}

func Key(id string) string {
	return keyPrefix + id
}

func (c *redisCache) Get(ctx context.Context, id string) (entity.Document, bool, error) {
	val, err := c.client.Get(ctx, Key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var movie entity.Document
	if err := json.Unmarshal(val, &movie); err != nil {
		return nil, false, fmt.Errorf("decode cached movie: %w", err)
	}

	c.log.Debug("Movie cache hit", zap.String("movie_id", id))
	return movie, true, nil
}

func (c *redisCache) Set(ctx context.Context, id string, movie entity.Document) error {
	b, err := json.Marshal(movie)
	if err != nil {
		return fmt.Errorf("encode movie: %w", err)
	}

	return c.client.Set(ctx, Key(id), b, c.ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, Key(id)).Err()
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
