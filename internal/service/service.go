package service

import (
	"go.uber.org/zap"

	"github.com/enrique0rtiz/software-pagos/config"
	"github.com/enrique0rtiz/software-pagos/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth    AuthService
	Client  ClientService
	Payment PaymentService
}

// NewService 创建 Service 聚合
func NewService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(cfg, logger),
		Client:  NewClientService(repo, logger),
		Payment: NewPaymentService(repo, logger),
	}
}
