package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/enrique0rtiz/software-pagos/internal/session"
	"github.com/enrique0rtiz/software-pagos/pkg/response"
)

// MsgUnauthorized 未认证访问的固定提示（外部契约，勿改动）
const MsgUnauthorized = "No autorizado. Debe iniciar sesión."

// SessionAuth 会话认证中间件
// 从会话 Cookie 验签并读取服务端会话状态；只读检查，不改动会话
// 未认证一律返回 401 与固定提示
func SessionAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(sessions.CookieName())
		if err != nil {
			response.Unauthorized(c, MsgUnauthorized)
			c.Abort()
			return
		}

		data, err := sessions.Resolve(c.Request.Context(), cookie)
		if err != nil || !data.Authenticated {
			response.Unauthorized(c, MsgUnauthorized)
			c.Abort()
			return
		}

		// 将用户信息注入上下文
		c.Set("username", data.Username)

		c.Next()
	}
}
