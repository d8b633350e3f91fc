package audit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	confirmQueueKey = "ledger_confirmations"
	sweepLockKey    = "ledger_sweep_lock"
)

// RedisQueue - очередь подтверждений в списке Redis
type RedisQueue struct {
	redisClient *redis.Client
}

func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{redisClient: client}
}

// Enqueue добавляет идентификатор записи в левую часть списка
func (q *RedisQueue) Enqueue(ctx context.Context, id int64) error {
	if err := q.redisClient.LPush(ctx, confirmQueueKey, strconv.FormatInt(id, 10)).Err(); err != nil {
		return fmt.Errorf("failed to enqueue audit entry %d: %w", id, err)
	}
	return nil
}

// Dequeue ждет элемент не дольше timeout; ok=false, если очередь пуста
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) (int64, bool, error) {
	// result[0] - ключ, result[1] - значение
	result, err := q.redisClient.BRPop(ctx, timeout, confirmQueueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to pop audit entry from Redis: %w", err)
	}
	id, err := strconv.ParseInt(result[1], 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid audit entry id %q in queue: %w", result[1], err)
	}
	return id, true, nil
}

// TryLock берет блокировку обхода между экземплярами сервиса
func (q *RedisQueue) TryLock(ctx context.Context, owner string, ttl time.Duration) (bool, error) {
	ok, err := q.redisClient.SetNX(ctx, sweepLockKey, owner, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire sweep lock: %w", err)
	}
	return ok, nil
}
