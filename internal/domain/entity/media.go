package entity

// MediaKind 文件类路由的描述
type MediaKind struct {
	// Route 路由名，用于日志与指标
	Route string
	// Field multipart 中文件字段名
	Field string
	// DefaultPrompt 未提供 prompt 时使用的默认说明
	DefaultPrompt string
	// MissingMessage 文件缺失时返回给调用方的错误信息
	MissingMessage string
}

// 预定义的文件类路由
var (
	MediaImage = MediaKind{
		Route:          "generate-from-image",
		Field:          "image",
		DefaultPrompt:  "Describe this image.",
		MissingMessage: "Image file is required",
	}
	MediaDocument = MediaKind{
		Route:          "generate-from-document",
		Field:          "document",
		DefaultPrompt:  "Summarize the following document:",
		MissingMessage: "Document file is required",
	}
	MediaAudio = MediaKind{
		Route:          "generate-from-audio",
		Field:          "audio",
		DefaultPrompt:  "Transcribe the following audio:",
		MissingMessage: "Audio file is required",
	}
)

// RouteGenerateText 文本生成路由名
const RouteGenerateText = "generate-text"

// PromptRequiredMessage 文本路由缺少 prompt 时的错误信息
const PromptRequiredMessage = "Prompt is required"
