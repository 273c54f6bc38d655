// Package generation 提供生成请求的应用服务：组装内容、调用模型并提取文本
package generation

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"genai-relay-api/internal/domain/entity"
	"genai-relay-api/internal/domain/service"
	"genai-relay-api/pkg/errors"
	"genai-relay-api/pkg/logger"
	"genai-relay-api/pkg/metrics"
	"genai-relay-api/pkg/tracer"
)

// Service 生成服务
type Service struct {
	client service.ModelClient
	model  string
}

// NewService 创建生成服务，模型固定为 entity.DefaultModel
func NewService(client service.ModelClient) *Service {
	return &Service{
		client: client,
		model:  entity.DefaultModel,
	}
}

// GenerateText 根据纯文本 prompt 生成内容
func (s *Service) GenerateText(ctx context.Context, prompt string) (*entity.GenerationResult, error) {
	if prompt == "" {
		return nil, errors.New(errors.CodeInvalidParam, entity.PromptRequiredMessage)
	}

	contents := []entity.Content{
		{Parts: []entity.ContentPart{entity.TextPart(prompt)}},
	}
	return s.generate(ctx, entity.RouteGenerateText, contents)
}

// GenerateFromMedia 根据附件与可选 prompt 生成内容
// 内容分两组发送：第一组为说明文本，第二组为附件内联数据
func (s *Service) GenerateFromMedia(ctx context.Context, kind entity.MediaKind, req entity.GenerationRequest) (*entity.GenerationResult, error) {
	if req.Attachment == nil {
		return nil, errors.New(errors.CodeInvalidParam, kind.MissingMessage)
	}

	prompt := req.PromptText
	if prompt == "" {
		prompt = kind.DefaultPrompt
	}

	metrics.AttachmentSize.WithLabelValues(kind.Route).Observe(float64(len(req.Attachment.Data)))
	logger.Debug(ctx, "attachment received",
		"filename", req.Attachment.Filename,
		"mime_type", req.Attachment.MIMEType,
		"size", len(req.Attachment.Data),
	)

	contents := []entity.Content{
		{Parts: []entity.ContentPart{entity.TextPart(prompt)}},
		{Parts: []entity.ContentPart{entity.InlinePart(req.Attachment.Data, req.Attachment.MIMEType)}},
	}
	return s.generate(ctx, kind.Route, contents)
}

func (s *Service) generate(ctx context.Context, route string, contents []entity.Content) (*entity.GenerationResult, error) {
	ctx, span := tracer.Start(ctx, "genai.GenerateContent",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("llm.model", s.model),
			attribute.String("relay.route", route),
		),
	)
	defer span.End()

	start := time.Now()
	resp, err := s.client.GenerateContent(ctx, s.model, contents)
	metrics.LLMCallDuration.WithLabelValues(s.model, route).Observe(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.LLMCallTotal.WithLabelValues(s.model, route, classifyUpstreamError(err)).Inc()
		return nil, errors.Upstream(err)
	}
	metrics.LLMCallTotal.WithLabelValues(s.model, route, callStatusSuccess).Inc()

	logger.Debug(ctx, "model call completed", "model", s.model, "latency_ms", time.Since(start).Milliseconds())

	return &entity.GenerationResult{Result: ExtractText(ctx, resp)}, nil
}
