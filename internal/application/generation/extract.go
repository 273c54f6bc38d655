package generation

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"genai-relay-api/internal/domain/entity"
	"genai-relay-api/pkg/logger"
	"genai-relay-api/pkg/metrics"
)

// firstTextPath 首个候选的首个内容片段文本
const firstTextPath = "candidates.0.content.parts.0.text"

var (
	errNilResponse  = errors.New("model response is nil")
	errInvalidShape = errors.New("model response is not valid JSON")
)

var prettyOptions = &pretty.Options{
	Width:    -1,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// ExtractText 从模型响应中提取首个文本片段。
// 文本缺失或为空时返回完整响应的缩进 JSON；结构异常时记录日志后同样回退。
func ExtractText(ctx context.Context, resp *entity.ModelResponse) string {
	text, err := firstText(resp)
	if err != nil {
		logger.Error(ctx, "failed to extract text from model response", err)
		metrics.ExtractionFallbackTotal.WithLabelValues("unexpected_shape").Inc()
		return serialize(resp)
	}
	if text != "" {
		return text
	}

	metrics.ExtractionFallbackTotal.WithLabelValues("no_text").Inc()
	return serialize(resp)
}

func firstText(resp *entity.ModelResponse) (string, error) {
	if resp == nil {
		return "", errNilResponse
	}
	if !gjson.ValidBytes(resp.Raw) {
		return "", errInvalidShape
	}

	res := gjson.GetBytes(resp.Raw, firstTextPath)
	switch {
	case !res.Exists(), res.Type == gjson.Null:
		return "", nil
	case res.Type != gjson.String:
		return "", fmt.Errorf("unexpected %s at %s", res.Type, firstTextPath)
	default:
		return res.Str, nil
	}
}

// serialize 原样序列化完整响应
func serialize(resp *entity.ModelResponse) string {
	if resp == nil || len(resp.Raw) == 0 {
		return "null"
	}
	if !gjson.ValidBytes(resp.Raw) {
		return string(resp.Raw)
	}
	return string(bytes.TrimRight(pretty.PrettyOptions(resp.Raw, prettyOptions), "\n"))
}
