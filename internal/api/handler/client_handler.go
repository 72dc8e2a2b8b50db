package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/enrique0rtiz/software-pagos/internal/dto"
	"github.com/enrique0rtiz/software-pagos/internal/service"
	"github.com/enrique0rtiz/software-pagos/pkg/apierrors"
	"github.com/enrique0rtiz/software-pagos/pkg/response"
)

// ClientHandler 客户相关接口
type ClientHandler struct {
	clientService service.ClientService
	logger        *zap.Logger
}

// NewClientHandler 创建 ClientHandler 实例
func NewClientHandler(clientService service.ClientService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{clientService: clientService, logger: logger}
}

// List 客户列表，可按学年过滤
// GET /api/clients?anio=2024-2025
func (h *ClientHandler) List(c *gin.Context) {
	var req dto.ClientListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.InternalError(c, "Error al obtener los clientes")
		return
	}

	clients, err := h.clientService.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "Error al obtener los clientes")
		return
	}

	response.OK(c, clients)
}

// Get 查询单个客户
// GET /api/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Cliente no encontrado")
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			response.NotFound(c, "Cliente no encontrado")
			return
		}
		response.InternalError(c, "Error al obtener el cliente")
		return
	}

	response.OK(c, client)
}

// Create 新建客户
// POST /api/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailure(c, "Error al crear el cliente", err)
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), &req)
	if err != nil {
		var vErr *apierrors.ValidationError
		if errors.As(err, &vErr) {
			response.BadRequest(c, vErr.Error())
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Error al crear el cliente", err.Error())
		return
	}

	response.Created(c, client)
}

// Update 整行替换更新客户
// PUT /api/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Cliente no encontrado")
		return
	}

	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailure(c, "Error al actualizar el cliente", err)
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), id, &req)
	if err != nil {
		var vErr *apierrors.ValidationError
		if errors.As(err, &vErr) {
			response.BadRequest(c, vErr.Error())
			return
		}
		if errors.Is(err, service.ErrClientNotFound) {
			response.NotFound(c, "Cliente no encontrado")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Error al actualizar el cliente", err.Error())
		return
	}

	response.OK(c, client)
}

// Delete 删除客户
// DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Cliente no encontrado")
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			response.NotFound(c, "Cliente no encontrado")
			return
		}
		response.InternalError(c, "Error al eliminar el cliente")
		return
	}

	response.Success(c, "Cliente eliminado exitosamente")
}

// parseID 解析路径参数中的数字 ID
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
