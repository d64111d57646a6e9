package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-backend/internal/config"
)

func TestRedisOptions(t *testing.T) {
	t.Run("нет адресов", func(t *testing.T) {
		_, err := redisOptions(config.RedisConfig{})
		assert.Error(t, err)
	})

	t.Run("single через Addr", func(t *testing.T) {
		opts, err := redisOptions(config.RedisConfig{Addr: "localhost:6379", MinRetryBackoff: 10})
		require.NoError(t, err)
		assert.Equal(t, []string{"localhost:6379"}, opts.Addrs)
		assert.Equal(t, 10*time.Millisecond, opts.MinRetryBackoff)
	})

	t.Run("sentinel без master_name", func(t *testing.T) {
		_, err := redisOptions(config.RedisConfig{Mode: "sentinel", Addrs: []string{"a:26379"}})
		assert.Error(t, err)
	})

	t.Run("sentinel", func(t *testing.T) {
		opts, err := redisOptions(config.RedisConfig{Mode: "sentinel", Addrs: []string{"a:26379"}, MasterName: "mymaster"})
		require.NoError(t, err)
		assert.Equal(t, "mymaster", opts.MasterName)
	})

	t.Run("неизвестный режим", func(t *testing.T) {
		_, err := redisOptions(config.RedisConfig{Mode: "ring", Addr: "a:6379"})
		assert.Error(t, err)
	})
}
