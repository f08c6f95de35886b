package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vogiaan1904/docqueue/config"
	"github.com/vogiaan1904/docqueue/pkg/logger"
)

func TestConnect(t *testing.T) {
	m := miniredis.RunT(t)
	l := logger.InitializeTestZapLogger()
	ctx := context.Background()

	cli, err := Connect(ctx, config.RedisConfig{
		Addr:        m.Addr(),
		DialTimeout: time.Second,
	}, l)
	require.NoError(t, err)

	require.NoError(t, cli.Set(ctx, "k", "v", 0).Err())
	got, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	Disconnect(ctx, cli, l)
	assert.Error(t, cli.Ping(ctx).Err())
}

func TestConnect_Unreachable(t *testing.T) {
	m := miniredis.RunT(t)
	addr := m.Addr()
	m.Close()

	_, err := Connect(context.Background(), config.RedisConfig{
		Addr:        addr,
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	}, logger.InitializeTestZapLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping Redis")
}

func TestDisconnect_NilClient(t *testing.T) {
	assert.NotPanics(t, func() {
		Disconnect(context.Background(), nil, logger.InitializeTestZapLogger())
	})
}
