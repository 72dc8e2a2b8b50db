package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/enrique0rtiz/software-pagos/internal/dto"
	"github.com/enrique0rtiz/software-pagos/internal/service"
	"github.com/enrique0rtiz/software-pagos/internal/session"
	"github.com/enrique0rtiz/software-pagos/pkg/response"
)

// AuthHandler 认证相关接口
type AuthHandler struct {
	authService service.AuthService
	sessions    *session.Manager
	logger      *zap.Logger
}

// NewAuthHandler 创建 AuthHandler 实例
func NewAuthHandler(authService service.AuthService, sessions *session.Manager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, logger: logger}
}

// Login 管理员登录
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		if tooLarge(c, err) {
			return
		}
		response.BadRequest(c, "Usuario y contraseña son requeridos")
		return
	}

	if err := h.authService.VerifyCredentials(req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrNotConfigured) {
			response.InternalError(c, "Error de configuración del servidor")
			return
		}
		response.Unauthorized(c, "Credenciales incorrectas")
		return
	}

	cookieValue, err := h.sessions.Create(c.Request.Context(), req.Username)
	if err != nil {
		h.logger.Error("创建会话失败", zap.Error(err))
		response.InternalError(c, "Error interno del servidor")
		return
	}

	http.SetCookie(c.Writer, h.sessions.Cookie(cookieValue))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Success:  true,
		Message:  "Login exitoso",
		Username: req.Username,
	})
}

// Logout 退出登录，销毁服务端会话并清除 Cookie
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(h.sessions.CookieName()); err == nil {
		if err := h.sessions.Destroy(c.Request.Context(), cookie); err != nil {
			h.logger.Error("销毁会话失败", zap.Error(err))
			response.InternalError(c, "Error al cerrar sesión")
			return
		}
	}

	http.SetCookie(c.Writer, h.sessions.ExpiredCookie())
	response.Success(c, "Sesión cerrada exitosamente")
}

// Check 查询当前会话的认证状态，只读探测，不刷新也不销毁会话
// GET /api/auth/check
func (h *AuthHandler) Check(c *gin.Context) {
	cookie, err := c.Cookie(h.sessions.CookieName())
	if err != nil {
		c.JSON(http.StatusOK, dto.CheckResponse{Authenticated: false})
		return
	}

	data, err := h.sessions.Resolve(c.Request.Context(), cookie)
	if err != nil || !data.Authenticated {
		c.JSON(http.StatusOK, dto.CheckResponse{Authenticated: false})
		return
	}

	c.JSON(http.StatusOK, dto.CheckResponse{Authenticated: true, Username: data.Username})
}
