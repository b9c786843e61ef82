package cache

import (
	"context"
	"testing"

	"movie-master/internal/data/entity"
	"movie-master/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithoutAddrIsNoop(t *testing.T) {
	c, err := New(utils.RedisConfig{}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, Noop{}, c)

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "m1", entity.Document{"title": "Dune"}))

	doc, ok, err := c.Get(ctx, "m1")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, doc)
	assert.NoError(t, c.Delete(ctx, "m1"))
	assert.NoError(t, c.Close())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "movie:665f1c2e9b1e8a0012345678", Key("665f1c2e9b1e8a0012345678"))
}
