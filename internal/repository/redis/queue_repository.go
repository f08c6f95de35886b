package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/vogiaan1904/docqueue/pkg/logger"
)

type QueueRepository interface {
	// AddToWait inserts userID into the wait set only if absent and returns its 1-based rank.
	// added is false when the user was already waiting; rank is then 0.
	AddToWait(ctx context.Context, queue, userID string, score int64) (rank int64, added bool, err error)
	// MoveToAllowed pops up to count lowest-scored waiters into the allow set in one step.
	MoveToAllowed(ctx context.Context, queue string, count int64, score int64) ([]string, error)
	GetWaitRank(ctx context.Context, queue, userID string) (int64, error)
	GetWaitSize(ctx context.Context, queue string) (int64, error)
	GetAllowedSize(ctx context.Context, queue string) (int64, error)
	IsAllowed(ctx context.Context, queue, userID string) (bool, error)
	ScanQueues(ctx context.Context) ([]string, error)
}

// KEYS[1] wait set, ARGV[1] score, ARGV[2] member.
var addToWaitScript = redis.NewScript(`
	local added = redis.call('ZADD', KEYS[1], 'NX', ARGV[1], ARGV[2])
	if added == 0 then
		return 0
	end

	return redis.call('ZRANK', KEYS[1], ARGV[2]) + 1
`)

// KEYS[1] wait set, KEYS[2] allow set, ARGV[1] count, ARGV[2] admission score.
var moveToAllowedScript = redis.NewScript(`
	local popped = redis.call('ZPOPMIN', KEYS[1], ARGV[1])
	local members = {}

	for i = 1, #popped, 2 do
		redis.call('ZADD', KEYS[2], ARGV[2], popped[i])
		members[#members + 1] = popped[i]
	end

	return members
`)

const scanBatchSize = 100

type redisQueueRepository struct {
	cli *redis.Client
	l   logger.Logger
}

func NewRedisQueueRepository(cli *redis.Client, l logger.Logger) QueueRepository {
	return &redisQueueRepository{
		cli: cli,
		l:   l,
	}
}

func (r *redisQueueRepository) AddToWait(ctx context.Context, queue, userID string, score int64) (int64, bool, error) {
	rank, err := addToWaitScript.Run(ctx, r.cli, []string{waitKey(queue)}, score, userID).Int64()
	if err != nil {
		r.l.Errorf(ctx, "redisQueueRepository.AddToWait: %v", err)
		return 0, false, err
	}

	if rank == 0 {
		r.l.Debugf(ctx, "User %s already waiting in queue %s", userID, queue)
		return 0, false, nil
	}

	r.l.Debugf(ctx, "Added user %s to queue %s at rank %d", userID, queue, rank)

	return rank, true, nil
}

func (r *redisQueueRepository) MoveToAllowed(ctx context.Context, queue string, count int64, score int64) ([]string, error) {
	if count <= 0 {
		return []string{}, nil
	}

	keys := []string{waitKey(queue), allowKey(queue)}
	userIDs, err := moveToAllowedScript.Run(ctx, r.cli, keys, count, score).StringSlice()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []string{}, nil
		}

		r.l.Errorf(ctx, "redisQueueRepository.MoveToAllowed: %v", err)
		return nil, err
	}

	if len(userIDs) > 0 {
		r.l.Debugf(ctx, "Moved %d users of queue %s to allowed", len(userIDs), queue)
	}

	return userIDs, nil
}

func (r *redisQueueRepository) GetWaitRank(ctx context.Context, queue, userID string) (int64, error) {
	rank, err := r.cli.ZRank(ctx, waitKey(queue), userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil // Not waiting
		}

		r.l.Errorf(ctx, "redisQueueRepository.GetWaitRank: %v", err)
		return 0, err
	}

	return rank + 1, nil
}

func (r *redisQueueRepository) GetWaitSize(ctx context.Context, queue string) (int64, error) {
	count, err := r.cli.ZCard(ctx, waitKey(queue)).Result()
	if err != nil {
		r.l.Errorf(ctx, "redisQueueRepository.GetWaitSize: %v", err)
		return 0, err
	}

	return count, nil
}

func (r *redisQueueRepository) GetAllowedSize(ctx context.Context, queue string) (int64, error) {
	count, err := r.cli.ZCard(ctx, allowKey(queue)).Result()
	if err != nil {
		r.l.Errorf(ctx, "redisQueueRepository.GetAllowedSize: %v", err)
		return 0, err
	}

	return count, nil
}

func (r *redisQueueRepository) IsAllowed(ctx context.Context, queue, userID string) (bool, error) {
	_, err := r.cli.ZRank(ctx, allowKey(queue), userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		r.l.Errorf(ctx, "redisQueueRepository.IsAllowed: %v", err)
		return false, err
	}

	return true, nil
}

func (r *redisQueueRepository) ScanQueues(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	queues := make([]string, 0)

	iter := r.cli.Scan(ctx, 0, waitKeyPattern, scanBatchSize).Iterator()
	for iter.Next(ctx) {
		q, ok := queueFromWaitKey(iter.Val())
		if !ok {
			continue
		}

		// SCAN may return a key more than once.
		if _, dup := seen[q]; dup {
			continue
		}
		seen[q] = struct{}{}
		queues = append(queues, q)
	}

	if err := iter.Err(); err != nil {
		r.l.Errorf(ctx, "redisQueueRepository.ScanQueues: %v", err)
		return nil, err
	}

	return queues, nil
}
