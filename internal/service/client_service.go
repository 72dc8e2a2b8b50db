package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/enrique0rtiz/software-pagos/internal/dto"
	"github.com/enrique0rtiz/software-pagos/internal/mapper"
	"github.com/enrique0rtiz/software-pagos/internal/repository"
	"github.com/enrique0rtiz/software-pagos/pkg/apierrors"
)

// ── 客户模块业务错误 ──

var (
	ErrClientNotFound = errors.New("客户不存在")
)

// ClientService 客户业务接口
type ClientService interface {
	List(ctx context.Context, req *dto.ClientListRequest) ([]dto.ClientResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error)
	Create(ctx context.Context, req *dto.ClientRequest) (*dto.ClientResponse, error)
	Update(ctx context.Context, id int64, req *dto.ClientRequest) (*dto.ClientResponse, error)
	Delete(ctx context.Context, id int64) error
}

type clientService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClientService 创建 ClientService 实例
func NewClientService(repo *repository.Repository, logger *zap.Logger) ClientService {
	return &clientService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *clientService) List(ctx context.Context, req *dto.ClientListRequest) ([]dto.ClientResponse, error) {
	clients, err := s.repo.Client.List(ctx, req.Anio)
	if err != nil {
		s.logger.Error("列出客户失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		result = append(result, *mapper.ClientToResponse(&clients[i]))
	}

	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *clientService) GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	client, err := s.repo.Client.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("查询客户失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return mapper.ClientToResponse(client), nil
}

// ────────────────────── Create ──────────────────────

func (s *clientService) Create(ctx context.Context, req *dto.ClientRequest) (*dto.ClientResponse, error) {
	if err := validateClientRequired(req); err != nil {
		return nil, err
	}

	client := mapper.ClientToModel(req)
	if err := s.repo.Client.Create(ctx, client); err != nil {
		s.logger.Error("创建客户失败", zap.Error(err))
		return nil, err
	}

	return mapper.ClientToResponse(client), nil
}

// ────────────────────── Update ──────────────────────

// Update 整行替换语义：请求中未携带的可选字段一律清为 NULL
func (s *clientService) Update(ctx context.Context, id int64, req *dto.ClientRequest) (*dto.ClientResponse, error) {
	if err := validateClientRequired(req); err != nil {
		return nil, err
	}

	client := mapper.ClientToModel(req)
	client.ID = id

	if err := s.repo.Client.Update(ctx, client); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("更新客户失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return mapper.ClientToResponse(client), nil
}

// ────────────────────── Delete ──────────────────────

func (s *clientService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Client.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClientNotFound
		}
		s.logger.Error("删除客户失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

// validateClientRequired 必填字段校验：anio、nombre、apellidos 非空
// 缺失字段按外部契约名逐一列出；校验失败不触发任何写入
func validateClientRequired(req *dto.ClientRequest) error {
	var missing []string
	if strings.TrimSpace(req.Anio) == "" {
		missing = append(missing, "anio")
	}
	if strings.TrimSpace(req.Nombre) == "" {
		missing = append(missing, "nombre")
	}
	if strings.TrimSpace(req.Apellidos) == "" {
		missing = append(missing, "apellidos")
	}
	if len(missing) > 0 {
		return apierrors.NewValidation(missing...)
	}
	return nil
}
