package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/enrique0rtiz/software-pagos/internal/service"
	"github.com/enrique0rtiz/software-pagos/internal/session"
	"github.com/enrique0rtiz/software-pagos/pkg/response"
)

// Handler 所有 HTTP 处理器的聚合
type Handler struct {
	Auth    *AuthHandler
	Client  *ClientHandler
	Payment *PaymentHandler
	Health  *HealthHandler
}

// NewHandler 创建 Handler 实例
func NewHandler(svc *service.Service, sessions *session.Manager, db *gorm.DB, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(svc.Auth, sessions, logger),
		Client:  NewClientHandler(svc.Client, logger),
		Payment: NewPaymentHandler(svc.Payment, logger),
		Health:  NewHealthHandler(db, logger),
	}
}

// tooLarge 请求体超过全局大小限制时写出 413 并返回 true
// 各绑定点先于常规格式错误检查，避免超限体被误报为普通解析失败
func tooLarge(c *gin.Context, err error) bool {
	var maxErr *http.MaxBytesError
	if !errors.As(err, &maxErr) {
		return false
	}
	response.PayloadTooLarge(c, "Cuerpo de la petición demasiado grande")
	return true
}

// bindFailure 请求体解析失败的统一响应
// 格式或类型错误属于客户端错误，返回 400 并附解析详情
func bindFailure(c *gin.Context, message string, err error) {
	if tooLarge(c, err) {
		return
	}
	response.ErrorWithDetails(c, http.StatusBadRequest, message, err.Error())
}
