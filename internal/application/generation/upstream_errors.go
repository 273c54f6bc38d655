package generation

import (
	"context"
	stderrors "errors"
	"strings"
)

// 上游调用结果分类，用作 llm_call_total 的 status 标签
const (
	callStatusSuccess     = "success"
	callStatusCanceled    = "canceled"
	callStatusTimeout     = "timeout"
	callStatusAuth        = "auth"
	callStatusRateLimited = "rate_limited"
	callStatusInvalid     = "invalid_request"
	callStatusError       = "error"
)

// classifyUpstreamError 根据错误链与消息文本对上游失败进行粗分类
func classifyUpstreamError(err error) string {
	if err == nil {
		return callStatusSuccess
	}
	switch {
	case stderrors.Is(err, context.Canceled):
		return callStatusCanceled
	case stderrors.Is(err, context.DeadlineExceeded):
		return callStatusTimeout
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key"):
		return callStatusAuth
	case strings.Contains(msg, "permission_denied"), strings.Contains(msg, "unauthenticated"):
		return callStatusAuth
	case strings.Contains(msg, "error 429"), strings.Contains(msg, "resource_exhausted"):
		return callStatusRateLimited
	case strings.Contains(msg, "error 400"), strings.Contains(msg, "invalid_argument"):
		return callStatusInvalid
	case strings.Contains(msg, "deadline exceeded"):
		return callStatusTimeout
	default:
		return callStatusError
	}
}
