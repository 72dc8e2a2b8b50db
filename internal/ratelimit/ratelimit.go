package ratelimit

import (
	"context"
	"time"
)

// 按客户端地址的滑动窗口限流。成功与失败的请求一并计数，
// 超限后的请求同样计入窗口。这是针对单管理员内部工具的粗粒度防护，
// 不是对分布式攻击者的安全保证。

// Result 一次限流判定的结果
// Reset 为窗口内最早命中滑出窗口的时刻，用于 RateLimit-Reset 响应头
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Time
}

// Limiter 滑动窗口限流器接口
type Limiter interface {
	// Allow 记录一次命中并判定是否放行
	Allow(ctx context.Context, key string) (Result, error)
}
