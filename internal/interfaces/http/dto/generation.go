package dto

// GenerateTextRequest 文本生成请求
type GenerateTextRequest struct {
	Prompt string `json:"prompt"`
}
