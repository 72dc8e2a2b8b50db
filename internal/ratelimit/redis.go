package ratelimit

import (
	"context"
	"time"

	pkgredis "github.com/enrique0rtiz/software-pagos/pkg/redis"
)

// RedisLimiter Redis 滑动窗口限流器
// 多进程部署时共享同一窗口；name 区分不同限流域（通用 API 与登录）
type RedisLimiter struct {
	rdb    *pkgredis.Client
	name   string
	limit  int
	window time.Duration
}

// NewRedisLimiter 创建 Redis 限流器
func NewRedisLimiter(rdb *pkgredis.Client, name string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, name: name, limit: limit, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	count, oldest, err := l.rdb.SlidingWindowIncr(ctx, "rate_limit:"+l.name+":"+key, l.window)
	if err != nil {
		return Result{}, err
	}

	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   int(count) <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
		Reset:     oldest.Add(l.window),
	}, nil
}
