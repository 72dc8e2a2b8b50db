package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/enrique0rtiz/software-pagos/internal/dto"
	"github.com/enrique0rtiz/software-pagos/internal/mapper"
	"github.com/enrique0rtiz/software-pagos/internal/model"
	"github.com/enrique0rtiz/software-pagos/internal/repository"
	"github.com/enrique0rtiz/software-pagos/pkg/apierrors"
)

// ── 付款模块业务错误 ──

var (
	ErrPaymentNotFound = errors.New("付款记录不存在")
	ErrInvalidMethod   = errors.New("付款方式无效")
	ErrInvalidAmount   = errors.New("金额必须为正数")
)

// PaymentService 付款业务接口
// 付款创建后不可修改，接口上不存在 Update
type PaymentService interface {
	List(ctx context.Context, req *dto.PaymentListRequest) ([]dto.PaymentResponse, error)
	Create(ctx context.Context, req *dto.PaymentCreateRequest) (*dto.PaymentResponse, error)
	Delete(ctx context.Context, id int64) error
}

type paymentService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewPaymentService 创建 PaymentService 实例
func NewPaymentService(repo *repository.Repository, logger *zap.Logger) PaymentService {
	return &paymentService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── List ──────────────────────

func (s *paymentService) List(ctx context.Context, req *dto.PaymentListRequest) ([]dto.PaymentResponse, error) {
	payments, err := s.repo.Payment.List(ctx, repository.PaymentFilter{
		Nombre: req.Nombre,
		Fecha:  req.Fecha,
		Metodo: req.Metodo,
	})
	if err != nil {
		s.logger.Error("列出付款失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		result = append(result, *mapper.PaymentToResponse(&payments[i]))
	}

	return result, nil
}

// ────────────────────── Create ──────────────────────

// Create 五个字段全部必填；fecha_pago 由服务端赋值，不接受客户端传入
func (s *paymentService) Create(ctx context.Context, req *dto.PaymentCreateRequest) (*dto.PaymentResponse, error) {
	var missing []string
	if strings.TrimSpace(req.Nombre) == "" {
		missing = append(missing, "nombre")
	}
	if strings.TrimSpace(req.Apellidos) == "" {
		missing = append(missing, "apellidos")
	}
	if strings.TrimSpace(req.Motivo) == "" {
		missing = append(missing, "motivo")
	}
	if req.Cantidad.Value == nil {
		missing = append(missing, "cantidad")
	}
	if strings.TrimSpace(req.MetodoPago) == "" {
		missing = append(missing, "metodo_pago")
	}
	if len(missing) > 0 {
		return nil, apierrors.NewValidation(missing...)
	}

	if !mapper.ValidMethod(req.MetodoPago) {
		return nil, ErrInvalidMethod
	}
	if *req.Cantidad.Value <= 0 {
		return nil, ErrInvalidAmount
	}

	payment := &model.Payment{
		Nombre:     req.Nombre,
		Apellidos:  req.Apellidos,
		Motivo:     req.Motivo,
		Cantidad:   *req.Cantidad.Value,
		MetodoPago: req.MetodoPago,
		FechaPago:  s.now().UTC(),
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.logger.Error("创建付款失败", zap.Error(err))
		return nil, err
	}

	return mapper.PaymentToResponse(payment), nil
}

// ────────────────────── Delete ──────────────────────

func (s *paymentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Payment.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentNotFound
		}
		s.logger.Error("删除付款失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}
