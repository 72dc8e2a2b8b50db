package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/enrique0rtiz/software-pagos/internal/dto"
	"github.com/enrique0rtiz/software-pagos/internal/service"
	"github.com/enrique0rtiz/software-pagos/pkg/apierrors"
	"github.com/enrique0rtiz/software-pagos/pkg/response"
)

// PaymentHandler 付款相关接口
type PaymentHandler struct {
	paymentService service.PaymentService
	logger         *zap.Logger
}

// NewPaymentHandler 创建 PaymentHandler 实例
func NewPaymentHandler(paymentService service.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, logger: logger}
}

// List 付款列表，可按姓名、日期、付款方式过滤
// GET /api/payments?nombre=&fecha=&metodo=
func (h *PaymentHandler) List(c *gin.Context) {
	var req dto.PaymentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.InternalError(c, "Error al obtener los pagos")
		return
	}

	payments, err := h.paymentService.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "Error al obtener los pagos")
		return
	}

	response.OK(c, payments)
}

// Create 登记一笔付款
// POST /api/payments
func (h *PaymentHandler) Create(c *gin.Context) {
	var req dto.PaymentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if tooLarge(c, err) {
			return
		}
		response.BadRequest(c, "Todos los campos son requeridos: nombre, apellidos, motivo, cantidad, metodo_pago")
		return
	}

	payment, err := h.paymentService.Create(c.Request.Context(), &req)
	if err != nil {
		var vErr *apierrors.ValidationError
		if errors.As(err, &vErr) {
			response.BadRequest(c, "Todos los campos son requeridos: nombre, apellidos, motivo, cantidad, metodo_pago")
			return
		}
		if errors.Is(err, service.ErrInvalidMethod) {
			response.BadRequest(c, "Método de pago inválido. Debe ser: efectivo, tarjeta o transferencia")
			return
		}
		if errors.Is(err, service.ErrInvalidAmount) {
			response.BadRequest(c, "La cantidad debe ser un número positivo")
			return
		}
		response.InternalError(c, "Error al crear el pago")
		return
	}

	response.Created(c, payment)
}

// Delete 删除一笔付款
// DELETE /api/payments/:id
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Pago no encontrado")
		return
	}

	if err := h.paymentService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			response.NotFound(c, "Pago no encontrado")
			return
		}
		response.InternalError(c, "Error al eliminar el pago")
		return
	}

	response.Success(c, "Pago eliminado exitosamente")
}
