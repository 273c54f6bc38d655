// Package llm 提供外部生成模型的客户端适配
package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"genai-relay-api/internal/config"
	"genai-relay-api/internal/domain/entity"
	"genai-relay-api/internal/domain/service"
	"genai-relay-api/pkg/logger"
)

// contentGenerator genai.Models 中被使用的子集
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GenAIClient 基于 google.golang.org/genai 的模型客户端
type GenAIClient struct {
	models contentGenerator
}

var _ service.ModelClient = (*GenAIClient)(nil)

// NewGenAIClient 在进程启动时构造一次客户端，之后只读共享。
// 构造失败（例如缺少凭证）不会阻止启动，而是返回一个每次调用都失败的客户端。
func NewGenAIClient(ctx context.Context, cfg *config.Config) service.ModelClient {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.LLM.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Warn(ctx, "genai client unavailable, model calls will fail", "error", err.Error())
		return NewUnavailableClient(err)
	}
	return &GenAIClient{models: client.Models}
}

// GenerateContent 发起一次生成请求，不重试
func (c *GenAIClient) GenerateContent(ctx context.Context, model string, contents []entity.Content) (*entity.ModelResponse, error) {
	req, err := toGenAIContents(contents)
	if err != nil {
		return nil, err
	}

	resp, err := c.models.GenerateContent(ctx, model, req, nil)
	if err != nil {
		return nil, err
	}

	raw, err := encodeResponse(resp)
	if err != nil {
		logger.Error(ctx, "failed to encode model response", err)
		return nil, fmt.Errorf("encode model response: %w", err)
	}
	return &entity.ModelResponse{Raw: raw}, nil
}

// encodeResponse 序列化 SDK 响应，保留字符串中的 <、>、& 原文
func encodeResponse(resp *genai.GenerateContentResponse) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		return nil, err
	}
	return unescapeHTML(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// htmlEscapes encoding/json 默认写出的转义序列及其原文
var htmlEscapes = map[string]string{
	`\u003c`: "<",
	`\u003e`: ">",
	`\u0026`: "&",
	`\u2028`: "\u2028",
	`\u2029`: "\u2029",
}

// unescapeHTML 还原 JSON 字符串中的 HTML 转义序列。
// SDK 的 MarshalJSON 内部使用 json.Marshal，Encoder 的 SetEscapeHTML 对其不生效。
func unescapeHTML(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u`)) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		if b[i+1] == 'u' && i+6 <= len(b) {
			if lit, ok := htmlEscapes[string(b[i:i+6])]; ok {
				out = append(out, lit...)
				i += 5
				continue
			}
		}
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}

// toGenAIContents 将领域内容转换为 SDK 内容，保持分组与片段顺序
func toGenAIContents(contents []entity.Content) ([]*genai.Content, error) {
	out := make([]*genai.Content, 0, len(contents))
	for i, content := range contents {
		parts := make([]*genai.Part, 0, len(content.Parts))
		for j, part := range content.Parts {
			if !part.IsInline() {
				parts = append(parts, genai.NewPartFromText(part.Text))
				continue
			}
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("contents[%d].parts[%d]: invalid inline data: %w", i, j, err)
			}
			parts = append(parts, genai.NewPartFromBytes(data, part.InlineData.MIMEType))
		}
		out = append(out, genai.NewContentFromParts(parts, genai.RoleUser))
	}
	return out, nil
}
