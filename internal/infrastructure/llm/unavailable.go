package llm

import (
	"context"

	"genai-relay-api/internal/domain/entity"
)

// UnavailableClient 无法构造真实客户端时的占位实现，每次调用都返回构造失败的原因
type UnavailableClient struct {
	err error
}

// NewUnavailableClient 创建占位客户端
func NewUnavailableClient(err error) *UnavailableClient {
	return &UnavailableClient{err: err}
}

// GenerateContent 始终返回构造错误
func (c *UnavailableClient) GenerateContent(ctx context.Context, model string, contents []entity.Content) (*entity.ModelResponse, error) {
	return nil, c.err
}

// Err 返回构造失败的原因
func (c *UnavailableClient) Err() error {
	return c.err
}
