package model

import "time"

// Payment 一次性付款记录 — 对应 pagos
// 创建后不可修改；fecha_pago 由服务端在创建时赋值
// 与 clientes 无外键关联（历史数据模型如此，保持独立）
type Payment struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Nombre     string    `gorm:"column:nombre;type:varchar(100);not null"`
	Apellidos  string    `gorm:"column:apellidos;type:varchar(200);not null"`
	Motivo     string    `gorm:"column:motivo;type:text;not null"`
	Cantidad   float64   `gorm:"column:cantidad;type:numeric(10,2);not null"`
	MetodoPago string    `gorm:"column:metodo_pago;type:varchar(20);not null"`
	FechaPago  time.Time `gorm:"column:fecha_pago;not null"`
}

// TableName 指定表名
func (Payment) TableName() string { return "pagos" }
