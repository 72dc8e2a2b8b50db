package service

import (
	"crypto/subtle"
	"errors"

	"go.uber.org/zap"

	"github.com/enrique0rtiz/software-pagos/config"
)

// ── 认证模块业务错误 ──

var (
	// ErrInvalidCredentials 凭据不正确
	// 不区分"用户不存在"与"密码错误"，避免向调用方泄漏哪一半校验失败
	ErrInvalidCredentials = errors.New("凭据不正确")
	// ErrNotConfigured 管理员凭据未配置
	ErrNotConfigured = errors.New("管理员凭据未配置")
)

// AuthService 认证业务接口
// 只负责凭据校验；会话的创建与销毁由 HTTP 层通过会话管理器完成
type AuthService interface {
	VerifyCredentials(username, password string) error
}

type authService struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(cfg *config.Config, logger *zap.Logger) AuthService {
	return &authService{cfg: cfg, logger: logger}
}

// VerifyCredentials 将输入与配置的固定管理员凭据对做精确比较
// 启动校验已保证凭据配置存在，这里再兜底一次，缺失视为服务端配置错误
func (s *authService) VerifyCredentials(username, password string) error {
	adminUser := s.cfg.Auth.AdminUsername
	adminPass := s.cfg.Auth.AdminPassword

	if adminUser == "" || adminPass == "" {
		s.logger.Error("管理员凭据未配置，拒绝登录")
		return ErrNotConfigured
	}

	// 常量时间比较，两项都比完再判定
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(adminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(adminPass)) == 1
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}

	return nil
}
