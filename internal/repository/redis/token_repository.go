package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vogiaan1904/docqueue/pkg/logger"
)

// TokenRepository keeps an audit copy of issued access tokens per queue.
// Tokens are recomputable, so nothing reads this copy on the validation path.
type TokenRepository interface {
	Save(ctx context.Context, queue, userID, token string, ttl time.Duration) error
	// Get returns found=false when no token was issued or the hash has expired.
	Get(ctx context.Context, queue, userID string) (token string, found bool, err error)
}

type redisTokenRepository struct {
	cli *redis.Client
	l   logger.Logger
}

func NewRedisTokenRepository(cli *redis.Client, l logger.Logger) TokenRepository {
	return &redisTokenRepository{
		cli: cli,
		l:   l,
	}
}

func (r *redisTokenRepository) Save(ctx context.Context, queue, userID, token string, ttl time.Duration) error {
	key := tokenKey(queue)

	// The TTL applies to the whole hash and is refreshed on every write.
	pipe := r.cli.TxPipeline()
	pipe.HSet(ctx, key, userID, token)
	pipe.Expire(ctx, key, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		r.l.Errorf(ctx, "redisTokenRepository.Save: %v", err)
		return err
	}

	r.l.Debugf(ctx, "Token saved for user %s in queue %s", userID, queue)

	return nil
}

func (r *redisTokenRepository) Get(ctx context.Context, queue, userID string) (string, bool, error) {
	tok, err := r.cli.HGet(ctx, tokenKey(queue), userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}

		r.l.Errorf(ctx, "redisTokenRepository.Get: %v", err)
		return "", false, err
	}

	return tok, true, nil
}
