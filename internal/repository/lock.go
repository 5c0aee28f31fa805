package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/street_safety_system/internal/service"
)

const clusterLockKey = "cluster_cycle_lock"

// Снимаем блокировку только если она все еще наша
const releaseLockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

// RedisClusterLock - межэкземплярная блокировка цикла кластеризации поверх
// Redis SET NX. TTL страхует от зависшего держателя.
type RedisClusterLock struct {
	redisClient *redis.Client
	token       string
}

func NewRedisClusterLock(redisClient *redis.Client) service.ClusterLocker {
	return &RedisClusterLock{
		redisClient: redisClient,
		token:       uuid.NewString(),
	}
}

// TryAcquire пытается захватить блокировку; false означает, что цикл
// уже идет на другом экземпляре
func (l *RedisClusterLock) TryAcquire(ctx context.Context, ttl time.Duration) (bool, error) {
	acquired, err := l.redisClient.SetNX(ctx, clusterLockKey, l.token, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire cluster lock: %w", err)
	}
	return acquired, nil
}

// Release снимает блокировку, если она принадлежит этому экземпляру
func (l *RedisClusterLock) Release(ctx context.Context) error {
	if err := l.redisClient.Eval(ctx, releaseLockScript, []string{clusterLockKey}, l.token).Err(); err != nil {
		return fmt.Errorf("failed to release cluster lock: %w", err)
	}
	return nil
}
