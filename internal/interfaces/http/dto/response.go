// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"genai-relay-api/pkg/errors"
)

// ResultResponse 成功响应结构
type ResultResponse struct {
	Result string `json:"result"`
}

// ErrorResponse 错误响应结构
type ErrorResponse struct {
	Error string `json:"error"`
}

// Success 返回成功响应
func Success(c *gin.Context, result string) {
	c.JSON(http.StatusOK, ResultResponse{Result: result})
}

// Error 返回错误响应
func Error(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, ErrorResponse{Error: message})
}

// AbortWithError 返回错误响应并中止后续处理
func AbortWithError(c *gin.Context, httpCode int, message string) {
	c.AbortWithStatusJSON(httpCode, ErrorResponse{Error: message})
}

// BadRequest 返回 400 错误
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// InternalError 返回 500 错误
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// FromError 按 AppError 映射状态码与信息，其余错误一律 500 并透传错误文本
func FromError(c *gin.Context, err error) {
	if errors.IsAppError(err) {
		appErr := errors.AsAppError(err)
		Error(c, appErr.HTTPStatus, appErr.Message)
		return
	}
	InternalError(c, err.Error())
}
