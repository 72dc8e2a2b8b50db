package model

import "time"

// Client 客户表 — 对应 clientes，每个学年每次报名一行
// 付款方式按规范模式存为三个互斥布尔列，最多一个为真；
// API 层的单一枚举由映射层展开/折叠
type Client struct {
	ID                  int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Anio                string     `gorm:"column:anio;type:varchar(20);not null"`
	Nombre              string     `gorm:"column:nombre;type:varchar(100);not null"`
	Apellidos           string     `gorm:"column:apellidos;type:varchar(200);not null"`
	FechaNacimiento     *time.Time `gorm:"column:fecha_nacimiento;type:date"`
	Clase               *string    `gorm:"column:clase;type:varchar(100)"`
	Profesor            *string    `gorm:"column:profesor;type:varchar(100)"`
	Horario             *string    `gorm:"column:horario;type:varchar(100)"`
	Senal               *string    `gorm:"column:senal;type:varchar(100)"`
	PagoMensual         bool       `gorm:"column:pago_mensual;not null;default:false"`
	PagoTrimestral      bool       `gorm:"column:pago_trimestral;not null;default:false"`
	Baja                bool       `gorm:"column:baja;not null;default:false"`
	PagoTarjeta         bool       `gorm:"column:pago_tarjeta;not null;default:false"`
	PagoTransferencia   bool       `gorm:"column:pago_transferencia;not null;default:false"`
	PagoEfectivo        bool       `gorm:"column:pago_efectivo;not null;default:false"`
	IngresosSep         *float64   `gorm:"column:ingresos_sep;type:numeric(10,2)"`
	IngresosOct         *float64   `gorm:"column:ingresos_oct;type:numeric(10,2)"`
	IngresosNov         *float64   `gorm:"column:ingresos_nov;type:numeric(10,2)"`
	IngresosEne         *float64   `gorm:"column:ingresos_ene;type:numeric(10,2)"`
	IngresosFeb         *float64   `gorm:"column:ingresos_feb;type:numeric(10,2)"`
	IngresosMar         *float64   `gorm:"column:ingresos_mar;type:numeric(10,2)"`
	IngresosAbr         *float64   `gorm:"column:ingresos_abr;type:numeric(10,2)"`
	IngresosMay         *float64   `gorm:"column:ingresos_may;type:numeric(10,2)"`
	IngresosJun         *float64   `gorm:"column:ingresos_jun;type:numeric(10,2)"`
	Recibo              *string    `gorm:"column:recibo;type:varchar(100)"`
	NumeroFactura       *string    `gorm:"column:numero_factura;type:varchar(100)"`
	Referencia          *string    `gorm:"column:referencia;type:varchar(200)"`
	ContratoInscripcion bool       `gorm:"column:contrato_inscripcion;not null;default:false"`
	Direccion           *string    `gorm:"column:direccion;type:varchar(300)"`
	Ciudad              *string    `gorm:"column:ciudad;type:varchar(100)"`
	CodigoPostal        *string    `gorm:"column:codigo_postal;type:varchar(20)"`
	Provincia           *string    `gorm:"column:provincia;type:varchar(100)"`
	Telf1               *string    `gorm:"column:telf1;type:varchar(30)"`
	Telf2               *string    `gorm:"column:telf2;type:varchar(30)"`
	NIF                 *string    `gorm:"column:nif;type:varchar(30)"`
	EnMailing           bool       `gorm:"column:en_mailing;not null;default:false"`
	Email               *string    `gorm:"column:email;type:varchar(200)"`
	Observaciones       *string    `gorm:"column:observaciones;type:text"`
}

// TableName 指定表名
func (Client) TableName() string { return "clientes" }
