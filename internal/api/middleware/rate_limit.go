package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/enrique0rtiz/software-pagos/internal/ratelimit"
	"github.com/enrique0rtiz/software-pagos/pkg/response"
)

// 限流提示为固定外部契约文案
const (
	// MsgRateLimited 通用 API 窗口超限
	MsgRateLimited = "Demasiadas peticiones desde esta IP. Por favor, intente de nuevo más tarde."
	// MsgLoginRateLimited 登录窗口超限
	MsgLoginRateLimited = "Demasiados intentos de inicio de sesión. Por favor, intente de nuevo en 15 minutos."
)

// RateLimit 按客户端地址的滑动窗口限流中间件
// 每个请求（含被拒绝的）都计入窗口；超限直接 429，不做任何后续处理。
// 响应携带标准 RateLimit-* 头；限流后端出错时降级放行
func RateLimit(limiter ratelimit.Limiter, logger *zap.Logger, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Warn("限流判定失败，降级放行", zap.Error(err))
			c.Next()
			return
		}

		resetSeconds := int(time.Until(result.Reset).Seconds())
		if resetSeconds < 0 {
			resetSeconds = 0
		}

		c.Header("RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("RateLimit-Reset", strconv.Itoa(resetSeconds))

		if !result.Allowed {
			c.Header("Retry-After", strconv.Itoa(resetSeconds))
			response.TooManyRequests(c, message)
			c.Abort()
			return
		}

		c.Next()
	}
}
