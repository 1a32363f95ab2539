package redis_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgredis "addressbook/pkg/db/redis"
)

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	t.Run("connects to running server", func(t *testing.T) {
		s := miniredis.RunT(t)

		host, portStr, _ := strings.Cut(s.Addr(), ":")
		port, err := strconv.Atoi(portStr)
		require.NoError(t, err)

		cfg := pkgredis.DefaultConfig()
		cfg.Host = host
		cfg.Port = port

		client, err := pkgredis.NewClient(ctx, cfg)
		require.NoError(t, err)
		require.NotNil(t, client)
		assert.NoError(t, client.Close())
	})

	t.Run("fails when server is unreachable", func(t *testing.T) {
		s := miniredis.RunT(t)
		addr := s.Addr()
		s.Close()

		host, portStr, _ := strings.Cut(addr, ":")
		port, err := strconv.Atoi(portStr)
		require.NoError(t, err)

		cfg := &pkgredis.Config{Host: host, Port: port, Timeout: 200 * time.Millisecond}

		client, err := pkgredis.NewClient(ctx, cfg)
		require.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), pkgredis.ErrPing)
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := pkgredis.DefaultConfig()

	assert.Equal(t, "localhost:6379", cfg.Address())
	assert.Equal(t, pkgredis.DefaultPoolSize, cfg.PoolSize)
	assert.Equal(t, pkgredis.DefaultTimeout, cfg.Timeout)
}
