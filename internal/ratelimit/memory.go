package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter 进程内滑动窗口限流器
// 每个键维护窗口内的命中时间序列，访问时惰性修剪，不跑后台协程
type MemoryLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	hits   map[string][]time.Time
}

// NewMemoryLimiter 创建内存限流器
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:  limit,
		window: window,
		hits:   make(map[string][]time.Time),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	now := time.Now()
	windowStart := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	// 修剪窗口外的旧命中
	entries := l.hits[key]
	kept := entries[:0]
	for _, t := range entries {
		if t.After(windowStart) {
			kept = append(kept, t)
		}
	}
	kept = append(kept, now)
	l.hits[key] = kept

	// 顺带清理其他键的空槽，避免一次性来源的键无限累积
	for k, v := range l.hits {
		if k != key && len(v) > 0 && !v[len(v)-1].After(windowStart) {
			delete(l.hits, k)
		}
	}

	count := len(kept)
	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   count <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
		Reset:     kept[0].Add(l.window),
	}, nil
}
