package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"genai-relay-api/internal/domain/service"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	client  service.ModelClient
	version string
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(client service.ModelClient, version string) *HealthHandler {
	return &HealthHandler{
		client:  client,
		version: version,
	}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type readinessCheck struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status string                     `json:"status"`
	Checks map[string]*readinessCheck `json:"checks,omitempty"`
}

// unavailable 构造失败的模型客户端会实现该接口
type unavailable interface {
	Err() error
}

// Health 健康检查接口
// @Summary 健康检查
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
	})
}

// Ready 就绪检查接口
// 模型客户端不可用只标记为 degraded，不拒绝流量，也不向上游探测凭证
// @Summary 就绪检查
// @Tags System
// @Produce json
// @Success 200 {object} readinessResponse
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	check := &readinessCheck{Status: "ok"}
	switch client := h.client.(type) {
	case nil:
		check.Status = "missing"
	case unavailable:
		check.Status = "unavailable"
		if err := client.Err(); err != nil {
			check.Error = err.Error()
		}
	}

	resp := readinessResponse{
		Status: "ok",
		Checks: map[string]*readinessCheck{"model_client": check},
	}
	if check.Status != "ok" {
		resp.Status = "degraded"
	}
	c.JSON(http.StatusOK, resp)
}

// Live 存活检查接口
// @Summary 存活检查
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}
