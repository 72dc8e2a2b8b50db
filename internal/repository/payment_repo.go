package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/enrique0rtiz/software-pagos/internal/model"
)

// PaymentFilter 付款列表过滤条件（全部可选，逻辑与组合）
type PaymentFilter struct {
	Nombre string // 名或姓的大小写不敏感子串匹配
	Fecha  string // 自然日精确匹配，YYYY-MM-DD
	Metodo string // 枚举精确匹配
}

// PaymentRepository 付款数据访问接口
// 付款创建后不可修改，接口上不存在 Update
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	List(ctx context.Context, filter PaymentFilter) ([]model.Payment, error)
	Delete(ctx context.Context, id int64) error
}

type paymentRepo struct {
	db *gorm.DB
}

// NewPaymentRepo 创建 PaymentRepository 实例
func NewPaymentRepo(db *gorm.DB) PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepo) List(ctx context.Context, filter PaymentFilter) ([]model.Payment, error) {
	var payments []model.Payment
	db := r.db.WithContext(ctx)

	if filter.Nombre != "" {
		pattern := "%" + filter.Nombre + "%"
		db = db.Where("nombre ILIKE ? OR apellidos ILIKE ?", pattern, pattern)
	}
	if filter.Fecha != "" {
		db = db.Where("DATE(fecha_pago) = ?", filter.Fecha)
	}
	if filter.Metodo != "" {
		db = db.Where("metodo_pago = ?", filter.Metodo)
	}

	err := db.Order("fecha_pago DESC").Find(&payments).Error
	return payments, err
}

// Delete 硬删除，目标行不存在时返回 gorm.ErrRecordNotFound
func (r *paymentRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Payment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
