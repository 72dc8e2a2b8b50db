package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/enrique0rtiz/software-pagos/internal/model"
)

// ClientRepository 客户数据访问接口
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	GetByID(ctx context.Context, id int64) (*model.Client, error)
	List(ctx context.Context, anio string) ([]model.Client, error)
	Update(ctx context.Context, client *model.Client) error
	Delete(ctx context.Context, id int64) error
}

type clientRepo struct {
	db *gorm.DB
}

// NewClientRepo 创建 ClientRepository 实例
func NewClientRepo(db *gorm.DB) ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepo) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	var client model.Client
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) List(ctx context.Context, anio string) ([]model.Client, error) {
	var clients []model.Client
	db := r.db.WithContext(ctx)

	if anio != "" {
		db = db.Where("anio = ?", anio)
	}

	// 排序契约固定：学年降序，姓升序，名升序
	err := db.Order("anio DESC, apellidos ASC, nombre ASC").Find(&clients).Error
	return clients, err
}

// Update 整行替换（含零值字段），目标行不存在时返回 gorm.ErrRecordNotFound
// 与并发删除竞争时，后提交方据此拿到 NotFound 而不是静默成功
func (r *clientRepo) Update(ctx context.Context, client *model.Client) error {
	result := r.db.WithContext(ctx).
		Model(&model.Client{}).
		Where("id = ?", client.ID).
		Select("*").
		Omit("id").
		Updates(client)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete 硬删除，目标行不存在时返回 gorm.ErrRecordNotFound
// 重复删除同一 id 第二次即得 NotFound，不做幂等化
func (r *clientRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Client{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
