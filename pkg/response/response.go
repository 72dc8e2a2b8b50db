package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 外部 JSON 契约与既有前端保持一致：
// 成功的读写直接返回数据本体，错误统一返回 {"error": ...}，
// 创建/更新失败可附带 details 字段，删除类操作返回 {"success": true, "message": ...}。

// ErrorBody 错误响应体
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessBody 操作成功响应体（删除、登出等无数据返回的操作）
type SuccessBody struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK 200 返回数据本体
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建成功，返回已持久化的行
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Success 200 操作成功
func Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessBody{Success: true, Message: message})
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}

// ErrorWithDetails 带内部错误详情的错误响应
// details 会把底层错误文本暴露给调用方，现有前端依赖它排障，暂保留
func ErrorWithDetails(c *gin.Context, httpStatus int, message, details string) {
	c.JSON(httpStatus, ErrorBody{Error: message, Details: details})
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// PayloadTooLarge 413
func PayloadTooLarge(c *gin.Context, message string) {
	Error(c, http.StatusRequestEntityTooLarge, message)
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, message)
}

// InternalError 500
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
