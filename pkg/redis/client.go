package redis

import (
	"github.com/redis/go-redis/v9"
	"github.com/vogiaan1904/docqueue/config"
)

// NewClient builds a pooled client. Store calls are bounded by the dial/read/write timeouts,
// so no queue operation waits on Redis indefinitely.
func NewClient(cfg config.RedisConfig) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if parsed, err := redis.ParseURL(cfg.Addr); err == nil {
		parsed.MaxRetries = opts.MaxRetries
		parsed.PoolSize = opts.PoolSize
		parsed.MinIdleConns = opts.MinIdleConns
		parsed.DialTimeout = opts.DialTimeout
		parsed.ReadTimeout = opts.ReadTimeout
		parsed.WriteTimeout = opts.WriteTimeout
		opts = parsed
	}

	return redis.NewClient(opts), nil
}
