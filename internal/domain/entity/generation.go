// Package entity 定义生成请求相关的领域实体
package entity

import (
	"encoding/base64"
	"encoding/json"
)

// DefaultModel 固定使用的外部生成模型
const DefaultModel = "gemini-2.5-flash"

// InlineData 内联二进制数据，Data 为 base64 编码
type InlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

// ContentPart 内容片段：文本或内联数据，二者取其一
type ContentPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// IsInline 是否为内联数据片段
func (p ContentPart) IsInline() bool {
	return p.InlineData != nil
}

// TextPart 构造文本片段
func TextPart(text string) ContentPart {
	return ContentPart{Text: text}
}

// InlinePart 构造内联数据片段，对原始字节做 base64 编码
func InlinePart(data []byte, mimeType string) ContentPart {
	return ContentPart{
		InlineData: &InlineData{
			MIMEType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(data),
		},
	}
}

// Content 一组有序的内容片段
type Content struct {
	Parts []ContentPart `json:"parts"`
}

// Attachment 上传的附件
type Attachment struct {
	Data     []byte
	MIMEType string
	Filename string
}

// GenerationRequest 单次生成请求
type GenerationRequest struct {
	PromptText string
	Attachment *Attachment
}

// ModelResponse 外部模型返回的原始响应
// Raw 保留完整结构，仅在提取失败时原样序列化
type ModelResponse struct {
	Raw json.RawMessage
}

// GenerationResult 生成结果
type GenerationResult struct {
	Result string `json:"result"`
}
