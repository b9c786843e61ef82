package cache

import (
	"context"

	"movie-master/internal/data/entity"
	"movie-master/pkg/utils"

	"go.uber.org/zap"
)

// MovieCache keeps single-movie lookups keyed by repository.LookupKey.CacheKey.
type MovieCache interface {
	Get(ctx context.Context, id string) (entity.Document, bool, error)
	Set(ctx context.Context, id string, movie entity.Document) error
	Delete(ctx context.Context, id string) error
	Close() error
}

// New returns a Redis backed cache, or a no-op one when no address is configured.
func New(config utils.RedisConfig, log *zap.Logger) (MovieCache, error) {
	if config.Addr == "" {
		log.Info("Movie cache disabled")
		return Noop{}, nil
	}
	return NewRedis(config, log)
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string) (entity.Document, bool, error) { return nil, false, nil }
func (Noop) Set(context.Context, string, entity.Document) error { return nil }
func (Noop) Delete(context.Context, string) error { return nil }
func (Noop) Close() error { return nil }
