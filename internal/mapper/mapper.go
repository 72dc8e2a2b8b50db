package mapper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/enrique0rtiz/software-pagos/internal/dto"
	"github.com/enrique0rtiz/software-pagos/internal/model"
)

// mapper 负责外部 API 表示与存储行之间的无损双向翻译：
// 日期的 DD/MM/YYYY 字符串互转、付款方式枚举与三个标志列的展开/折叠、
// 空串到 NULL 的归一。持久化模式的形状变化不应泄漏到 API 契约之外。

// ── 付款方式 ──

const (
	MethodEfectivo      = "efectivo"
	MethodTarjeta       = "tarjeta"
	MethodTransferencia = "transferencia"
)

// ValidMethod 校验付款方式枚举值
func ValidMethod(m string) bool {
	switch m {
	case MethodEfectivo, MethodTarjeta, MethodTransferencia:
		return true
	}
	return false
}

// ExpandMethod 写路径：单一枚举展开为至多一个为真的标志三元组
// 未知或空枚举值不点亮任何标志
func ExpandMethod(metodo string) (tarjeta, transferencia, efectivo bool) {
	return metodo == MethodTarjeta, metodo == MethodTransferencia, metodo == MethodEfectivo
}

// CollapseMethod 读路径：标志三元组折叠回单一枚举
// 多个标志同时为真属于数据完整性被破坏的行，按 tarjeta > transferencia > efectivo
// 的固定优先级兜底；全假返回 nil
func CollapseMethod(tarjeta, transferencia, efectivo bool) *string {
	var m string
	switch {
	case tarjeta:
		m = MethodTarjeta
	case transferencia:
		m = MethodTransferencia
	case efectivo:
		m = MethodEfectivo
	default:
		return nil
	}
	return &m
}

// ── 日期 ──

// ParseDate 解析外部 DD/MM/YYYY 日期为 UTC 零点
// 宽松策略：空串、斜杠数不是三段、数字不可解析时一律静默返回 nil，
// 不做严格校验——历史数据依赖这一行为，收紧会拒绝既有输入
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return nil
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return nil
	}

	// 固定按 UTC 解释日历日，与存储侧时区约定一致，避免跨时区偏移一天
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

// FormatDate 存储日期格式化为 DD/MM/YYYY
// 始终从日历字段重新计算，日/月补零，年四位
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	u := t.UTC()
	s := fmt.Sprintf("%02d/%02d/%04d", u.Day(), int(u.Month()), u.Year())
	return &s
}

// ── 空值归一 ──

// nullable 空串视为未设置，持久化为 NULL
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ── 客户行翻译 ──

// ClientToModel 写路径：API 请求翻译为存储行
// id 由调用方决定（创建为零值，更新为目标 id 的整行替换）
func ClientToModel(req *dto.ClientRequest) *model.Client {
	tarjeta, transferencia, efectivo := ExpandMethod(req.PagoMetodo)

	return &model.Client{
		Anio:                req.Anio,
		Nombre:              req.Nombre,
		Apellidos:           req.Apellidos,
		FechaNacimiento:     ParseDate(req.FechaNacimiento),
		Clase:               nullable(req.Clase),
		Profesor:            nullable(req.Profesor),
		Horario:             nullable(req.Horario),
		Senal:               nullable(req.Senal),
		PagoMensual:         req.PagoMensual.Bool(),
		PagoTrimestral:      req.PagoTrimestral.Bool(),
		Baja:                req.Baja.Bool(),
		PagoTarjeta:         tarjeta,
		PagoTransferencia:   transferencia,
		PagoEfectivo:        efectivo,
		IngresosSep:         req.IngresosSep.Value,
		IngresosOct:         req.IngresosOct.Value,
		IngresosNov:         req.IngresosNov.Value,
		IngresosEne:         req.IngresosEne.Value,
		IngresosFeb:         req.IngresosFeb.Value,
		IngresosMar:         req.IngresosMar.Value,
		IngresosAbr:         req.IngresosAbr.Value,
		IngresosMay:         req.IngresosMay.Value,
		IngresosJun:         req.IngresosJun.Value,
		Recibo:              nullable(req.Recibo),
		NumeroFactura:       nullable(req.NumeroFactura),
		Referencia:          nullable(req.Referencia),
		ContratoInscripcion: req.ContratoInscripcion.Bool(),
		Direccion:           nullable(req.Direccion),
		Ciudad:              nullable(req.Ciudad),
		CodigoPostal:        nullable(req.CodigoPostal),
		Provincia:           nullable(req.Provincia),
		Telf1:               nullable(req.Telf1),
		Telf2:               nullable(req.Telf2),
		NIF:                 nullable(req.NIF),
		EnMailing:           req.EnMailing.Bool(),
		Email:               nullable(req.Email),
		Observaciones:       nullable(req.Observaciones),
	}
}

// ClientToResponse 读路径：存储行翻译为 API 表示
// NULL 的金额字段保持 null，绝不补成 0
func ClientToResponse(m *model.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:                  m.ID,
		Anio:                m.Anio,
		Nombre:              m.Nombre,
		Apellidos:           m.Apellidos,
		FechaNacimiento:     FormatDate(m.FechaNacimiento),
		Clase:               m.Clase,
		Profesor:            m.Profesor,
		Horario:             m.Horario,
		Senal:               m.Senal,
		PagoMensual:         m.PagoMensual,
		PagoTrimestral:      m.PagoTrimestral,
		Baja:                m.Baja,
		PagoMetodo:          CollapseMethod(m.PagoTarjeta, m.PagoTransferencia, m.PagoEfectivo),
		IngresosSep:         m.IngresosSep,
		IngresosOct:         m.IngresosOct,
		IngresosNov:         m.IngresosNov,
		IngresosEne:         m.IngresosEne,
		IngresosFeb:         m.IngresosFeb,
		IngresosMar:         m.IngresosMar,
		IngresosAbr:         m.IngresosAbr,
		IngresosMay:         m.IngresosMay,
		IngresosJun:         m.IngresosJun,
		Recibo:              m.Recibo,
		NumeroFactura:       m.NumeroFactura,
		Referencia:          m.Referencia,
		ContratoInscripcion: m.ContratoInscripcion,
		Direccion:           m.Direccion,
		Ciudad:              m.Ciudad,
		CodigoPostal:        m.CodigoPostal,
		Provincia:           m.Provincia,
		Telf1:               m.Telf1,
		Telf2:               m.Telf2,
		NIF:                 m.NIF,
		EnMailing:           m.EnMailing,
		Email:               m.Email,
		Observaciones:       m.Observaciones,
	}
}

// ── 付款行翻译 ──

// PaymentToResponse 存储行翻译为 API 表示
func PaymentToResponse(m *model.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:         m.ID,
		Nombre:     m.Nombre,
		Apellidos:  m.Apellidos,
		Motivo:     m.Motivo,
		Cantidad:   m.Cantidad,
		MetodoPago: m.MetodoPago,
		FechaPago:  m.FechaPago.UTC().Format(time.RFC3339),
	}
}
