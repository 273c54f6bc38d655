package handler

import (
	"fmt"
	"io"
	"net/http"

	"genai-relay-api/internal/domain/entity"
)

const (
	// promptField multipart 中可选的 prompt 文本字段
	promptField = "prompt"
	// defaultUploadMIMEType 文件片段未声明类型时使用
	defaultUploadMIMEType = "application/octet-stream"
)

// Upload 解码后的 multipart 上传内容
type Upload struct {
	Attachment *entity.Attachment
	Prompt     string
}

// ReadMultipartUpload 逐个读取 multipart 片段，将指定字段的文件完整缓存在内存中，不落盘。
// 非 multipart 请求视为未上传文件；不校验 MIME 类型与大小。
func ReadMultipartUpload(r *http.Request, field string) (*Upload, error) {
	upload := &Upload{}

	mr, err := r.MultipartReader()
	if err != nil {
		return upload, nil
	}

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read multipart body: %w", err)
		}

		name := part.FormName()
		isFile := part.FileName() != ""

		switch {
		case isFile && name == field && upload.Attachment == nil:
			data, err := io.ReadAll(part)
			if err != nil {
				_ = part.Close()
				return nil, fmt.Errorf("failed to read %s: %w", field, err)
			}
			mimeType := part.Header.Get("Content-Type")
			if mimeType == "" {
				mimeType = defaultUploadMIMEType
			}
			upload.Attachment = &entity.Attachment{
				Data:     data,
				MIMEType: mimeType,
				Filename: part.FileName(),
			}
		case !isFile && name == promptField:
			data, err := io.ReadAll(part)
			if err != nil {
				_ = part.Close()
				return nil, fmt.Errorf("failed to read %s: %w", promptField, err)
			}
			upload.Prompt = string(data)
		}

		_ = part.Close()
	}

	return upload, nil
}
