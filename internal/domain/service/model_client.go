// Package service 定义领域层依赖的外部服务端口
package service

import (
	"context"

	"genai-relay-api/internal/domain/entity"
)

// ModelClient 外部生成模型的最小依赖（port）。
// 实现须可被并发调用，且单次调用只发起一次请求，不重试。
type ModelClient interface {
	GenerateContent(ctx context.Context, model string, contents []entity.Content) (*entity.ModelResponse, error)
}
