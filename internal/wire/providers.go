// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/google/wire"

	"genai-relay-api/internal/application/generation"
	"genai-relay-api/internal/config"
	"genai-relay-api/internal/domain/service"
	"genai-relay-api/internal/infrastructure/llm"
	"genai-relay-api/internal/interfaces/http/handler"
	"genai-relay-api/internal/interfaces/http/router"
)

// ModelSet 模型客户端提供者集合
var ModelSet = wire.NewSet(
	ProvideModelClient,
)

// GenerationSet 生成服务提供者集合
var GenerationSet = wire.NewSet(
	generation.NewService,
	handler.NewGenerationHandler,
)

// RouterSet 路由提供者集合
var RouterSet = wire.NewSet(
	ProvideHealthHandler,
	router.New,
)

// ProvideModelClient 提供进程级唯一的模型客户端
func ProvideModelClient(ctx context.Context, cfg *config.Config) (service.ModelClient, func(), error) {
	client := llm.NewGenAIClient(ctx, cfg)
	return client, func() {}, nil
}

// ProvideHealthHandler 提供健康检查处理器
func ProvideHealthHandler(client service.ModelClient, cfg *config.Config) *handler.HealthHandler {
	return handler.NewHealthHandler(client, cfg.App.Version)
}
