package dto

// ── 客户模块请求 ──

// ClientRequest 客户创建/更新请求（整行替换语义，非局部补丁）
// 字段名与既有前端的西班牙语契约一致；除 anio/nombre/apellidos 外全部可选
type ClientRequest struct {
	Anio                string      `json:"anio"`
	Nombre              string      `json:"nombre"`
	Apellidos           string      `json:"apellidos"`
	FechaNacimiento     string      `json:"fecha_nacimiento"` // DD/MM/YYYY，格式不符时静默落 NULL
	Clase               string      `json:"clase"`
	Profesor            string      `json:"profesor"`
	Horario             string      `json:"horario"`
	Senal               string      `json:"senal"`
	PagoMensual         FlexBool    `json:"pago_mensual"`
	PagoTrimestral      FlexBool    `json:"pago_trimestral"`
	Baja                FlexBool    `json:"baja"`
	PagoMetodo          string      `json:"pago_metodo"` // efectivo|tarjeta|transferencia|空
	IngresosSep         FlexDecimal `json:"ingresos_sep"`
	IngresosOct         FlexDecimal `json:"ingresos_oct"`
	IngresosNov         FlexDecimal `json:"ingresos_nov"`
	IngresosEne         FlexDecimal `json:"ingresos_ene"`
	IngresosFeb         FlexDecimal `json:"ingresos_feb"`
	IngresosMar         FlexDecimal `json:"ingresos_mar"`
	IngresosAbr         FlexDecimal `json:"ingresos_abr"`
	IngresosMay         FlexDecimal `json:"ingresos_may"`
	IngresosJun         FlexDecimal `json:"ingresos_jun"`
	Recibo              string      `json:"recibo"`
	NumeroFactura       string      `json:"numero_factura"`
	Referencia          string      `json:"referencia"`
	ContratoInscripcion FlexBool    `json:"contrato_inscripcion"`
	Direccion           string      `json:"direccion"`
	Ciudad              string      `json:"ciudad"`
	CodigoPostal        string      `json:"codigo_postal"`
	Provincia           string      `json:"provincia"`
	Telf1               string      `json:"telf1"`
	Telf2               string      `json:"telf2"`
	NIF                 string      `json:"nif"`
	EnMailing           FlexBool    `json:"en_mailing"`
	Email               string      `json:"email"`
	Observaciones       string      `json:"observaciones"`
}

// ClientListRequest 客户列表过滤参数
type ClientListRequest struct {
	Anio string `form:"anio"`
}

// ── 客户模块响应 ──

// ClientResponse 客户行的外部表示
// 存储侧的三个付款方式标志折叠为单一 pago_metodo 枚举
type ClientResponse struct {
	ID                  int64    `json:"id"`
	Anio                string   `json:"anio"`
	Nombre              string   `json:"nombre"`
	Apellidos           string   `json:"apellidos"`
	FechaNacimiento     *string  `json:"fecha_nacimiento"` // DD/MM/YYYY
	Clase               *string  `json:"clase"`
	Profesor            *string  `json:"profesor"`
	Horario             *string  `json:"horario"`
	Senal               *string  `json:"senal"`
	PagoMensual         bool     `json:"pago_mensual"`
	PagoTrimestral      bool     `json:"pago_trimestral"`
	Baja                bool     `json:"baja"`
	PagoMetodo          *string  `json:"pago_metodo"`
	IngresosSep         *float64 `json:"ingresos_sep"`
	IngresosOct         *float64 `json:"ingresos_oct"`
	IngresosNov         *float64 `json:"ingresos_nov"`
	IngresosEne         *float64 `json:"ingresos_ene"`
	IngresosFeb         *float64 `json:"ingresos_feb"`
	IngresosMar         *float64 `json:"ingresos_mar"`
	IngresosAbr         *float64 `json:"ingresos_abr"`
	IngresosMay         *float64 `json:"ingresos_may"`
	IngresosJun         *float64 `json:"ingresos_jun"`
	Recibo              *string  `json:"recibo"`
	NumeroFactura       *string  `json:"numero_factura"`
	Referencia          *string  `json:"referencia"`
	ContratoInscripcion bool     `json:"contrato_inscripcion"`
	Direccion           *string  `json:"direccion"`
	Ciudad              *string  `json:"ciudad"`
	CodigoPostal        *string  `json:"codigo_postal"`
	Provincia           *string  `json:"provincia"`
	Telf1               *string  `json:"telf1"`
	Telf2               *string  `json:"telf2"`
	NIF                 *string  `json:"nif"`
	EnMailing           bool     `json:"en_mailing"`
	Email               *string  `json:"email"`
	Observaciones       *string  `json:"observaciones"`
}
