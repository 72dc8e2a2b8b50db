package dto

// ── 付款模块请求 ──

// PaymentCreateRequest 付款创建请求（五个字段全部必填）
// fecha_pago 不接受客户端传入，由服务端赋值
type PaymentCreateRequest struct {
	Nombre     string      `json:"nombre"`
	Apellidos  string      `json:"apellidos"`
	Motivo     string      `json:"motivo"`
	Cantidad   FlexDecimal `json:"cantidad"`
	MetodoPago string      `json:"metodo_pago"`
}

// PaymentListRequest 付款列表过滤参数（全部可选，逻辑与组合）
type PaymentListRequest struct {
	Nombre string `form:"nombre"` // 名或姓的大小写不敏感子串匹配
	Fecha  string `form:"fecha"`  // 自然日精确匹配，YYYY-MM-DD
	Metodo string `form:"metodo"` // 枚举精确匹配
}

// ── 付款模块响应 ──

// PaymentResponse 付款行的外部表示
type PaymentResponse struct {
	ID         int64   `json:"id"`
	Nombre     string  `json:"nombre"`
	Apellidos  string  `json:"apellidos"`
	Motivo     string  `json:"motivo"`
	Cantidad   float64 `json:"cantidad"`
	MetodoPago string  `json:"metodo_pago"`
	FechaPago  string  `json:"fecha_pago"` // RFC 3339
}
