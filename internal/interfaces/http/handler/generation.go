// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"genai-relay-api/internal/application/generation"
	"genai-relay-api/internal/domain/entity"
	"genai-relay-api/internal/interfaces/http/dto"
	"genai-relay-api/pkg/errors"
	"genai-relay-api/pkg/logger"
)

// GenerationHandler 生成处理器
type GenerationHandler struct {
	svc *generation.Service
}

// NewGenerationHandler 创建生成处理器
func NewGenerationHandler(svc *generation.Service) *GenerationHandler {
	return &GenerationHandler{
		svc: svc,
	}
}

// GenerateText 根据文本 prompt 生成内容
// @Summary 文本生成
// @Tags Generation
// @Accept json
// @Produce json
// @Param body body dto.GenerateTextRequest true "prompt"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-text [post]
func (h *GenerationHandler) GenerateText(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// 无法解析的请求体等同于缺少 prompt
		req.Prompt = ""
	}

	result, err := h.svc.GenerateText(ctx, req.Prompt)
	if err != nil {
		h.fail(c, entity.RouteGenerateText, err)
		return
	}

	dto.Success(c, result.Result)
}

// GenerateFromImage 根据图片生成内容
// @Summary 图片理解
// @Tags Generation
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "图片"
// @Param prompt formData string false "说明文本"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-from-image [post]
func (h *GenerationHandler) GenerateFromImage(c *gin.Context) {
	h.generateFromMedia(c, entity.MediaImage)
}

// GenerateFromDocument 根据文档生成内容
// @Summary 文档摘要
// @Tags Generation
// @Accept multipart/form-data
// @Produce json
// @Param document formData file true "文档"
// @Param prompt formData string false "说明文本"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-from-document [post]
func (h *GenerationHandler) GenerateFromDocument(c *gin.Context) {
	h.generateFromMedia(c, entity.MediaDocument)
}

// GenerateFromAudio 根据音频生成内容
// @Summary 音频转写
// @Tags Generation
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "音频"
// @Param prompt formData string false "说明文本"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-from-audio [post]
func (h *GenerationHandler) GenerateFromAudio(c *gin.Context) {
	h.generateFromMedia(c, entity.MediaAudio)
}

func (h *GenerationHandler) generateFromMedia(c *gin.Context, kind entity.MediaKind) {
	ctx := c.Request.Context()

	upload, err := ReadMultipartUpload(c.Request, kind.Field)
	if err != nil {
		h.fail(c, kind.Route, errors.Wrap(err, errors.CodeGenerationFailed, err.Error()))
		return
	}

	result, err := h.svc.GenerateFromMedia(ctx, kind, entity.GenerationRequest{
		PromptText: upload.Prompt,
		Attachment: upload.Attachment,
	})
	if err != nil {
		h.fail(c, kind.Route, err)
		return
	}

	dto.Success(c, result.Result)
}

// fail 校验错误直接返回 400，其余错误记录日志后返回 500
func (h *GenerationHandler) fail(c *gin.Context, route string, err error) {
	appErr := errors.AsAppError(err)
	if appErr.HTTPStatus == http.StatusBadRequest {
		dto.BadRequest(c, appErr.Message)
		return
	}

	logger.Error(c.Request.Context(), "error in /"+route, err)
	dto.FromError(c, err)
}
