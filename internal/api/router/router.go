package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/enrique0rtiz/software-pagos/config"
	"github.com/enrique0rtiz/software-pagos/internal/api/handler"
	"github.com/enrique0rtiz/software-pagos/internal/api/middleware"
	"github.com/enrique0rtiz/software-pagos/internal/ratelimit"
	"github.com/enrique0rtiz/software-pagos/internal/session"
)

// maxBodyBytes 请求体上限 1MB
const maxBodyBytes = 1 << 20

// Limiters 路由所需的限流器集合
// 通用窗口覆盖全部 /api 路由，登录窗口额外叠加在登录接口上
type Limiters struct {
	API   ratelimit.Limiter
	Login ratelimit.Limiter
}

// Setup 组装全部路由与中间件
func Setup(cfg *config.Config, h *handler.Handler, sessions *session.Manager, limiters Limiters, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── API 路由 ──
	api := r.Group("/api")
	api.Use(middleware.RateLimit(limiters.API, logger, middleware.MsgRateLimited))
	{
		api.GET("/health", h.Health.Check)

		// 认证接口：登录叠加更严格的限流窗口
		auth := api.Group("/auth")
		{
			auth.POST("/login",
				middleware.RateLimit(limiters.Login, logger, middleware.MsgLoginRateLimited),
				h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/check", h.Auth.Check)
		}

		// 客户接口：需要已认证会话
		clients := api.Group("/clients")
		clients.Use(middleware.SessionAuth(sessions))
		{
			clients.GET("", h.Client.List)
			clients.GET("/:id", h.Client.Get)
			clients.POST("", h.Client.Create)
			clients.PUT("/:id", h.Client.Update)
			clients.DELETE("/:id", h.Client.Delete)
		}

		// 付款接口：需要已认证会话；付款记录不可修改，无 PUT
		payments := api.Group("/payments")
		payments.Use(middleware.SessionAuth(sessions))
		{
			payments.GET("", h.Payment.List)
			payments.POST("", h.Payment.Create)
			payments.DELETE("/:id", h.Payment.Delete)
		}
	}

	return r
}
