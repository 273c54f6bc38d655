package generation

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genai-relay-api/internal/domain/entity"
	apperrors "genai-relay-api/pkg/errors"
	"genai-relay-api/pkg/logger"
)

type capturingClient struct {
	mu     sync.Mutex
	models []string
	calls  [][]entity.Content
	resp   *entity.ModelResponse
	err    error
}

func (c *capturingClient) GenerateContent(ctx context.Context, model string, contents []entity.Content) (*entity.ModelResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.models = append(c.models, model)
	c.calls = append(c.calls, contents)
	return c.resp, c.err
}

func okResponse(text string) *entity.ModelResponse {
	return &entity.ModelResponse{
		Raw: []byte(`{"candidates":[{"content":{"parts":[{"text":"` + text + `"}],"role":"model"}}]}`),
	}
}

func TestService_GenerateText(t *testing.T) {
	client := &capturingClient{resp: okResponse("hello back")}
	svc := NewService(client)

	result, err := svc.GenerateText(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello back", result.Result)

	require.Len(t, client.calls, 1)
	assert.Equal(t, entity.DefaultModel, client.models[0])
	require.Len(t, client.calls[0], 1)
	assert.Equal(t, []entity.ContentPart{{Text: "hello"}}, client.calls[0][0].Parts)
}

func TestService_GenerateText_EmptyPrompt(t *testing.T) {
	client := &capturingClient{resp: okResponse("unused")}
	svc := NewService(client)

	_, err := svc.GenerateText(context.Background(), "")
	require.Error(t, err)

	appErr := apperrors.AsAppError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, entity.PromptRequiredMessage, appErr.Message)
	assert.Empty(t, client.calls)
}

func TestService_GenerateFromMedia_DefaultPrompt(t *testing.T) {
	for _, kind := range []entity.MediaKind{entity.MediaImage, entity.MediaDocument, entity.MediaAudio} {
		t.Run(kind.Route, func(t *testing.T) {
			client := &capturingClient{resp: okResponse("ok")}
			svc := NewService(client)
			data := []byte{0x00, 0xff, 0x10, 'a', 'b'}

			result, err := svc.GenerateFromMedia(context.Background(), kind, entity.GenerationRequest{
				Attachment: &entity.Attachment{Data: data, MIMEType: "application/x-test"},
			})
			require.NoError(t, err)
			assert.Equal(t, "ok", result.Result)

			require.Len(t, client.calls, 1)
			contents := client.calls[0]
			require.Len(t, contents, 2)
			assert.Equal(t, kind.DefaultPrompt, contents[0].Parts[0].Text)

			require.Len(t, contents[1].Parts, 1)
			inline := contents[1].Parts[0].InlineData
			require.NotNil(t, inline)
			assert.Equal(t, "application/x-test", inline.MIMEType)
			decoded, err := base64.StdEncoding.DecodeString(inline.Data)
			require.NoError(t, err)
			assert.Equal(t, data, decoded)
		})
	}
}

func TestService_GenerateFromMedia_CustomPrompt(t *testing.T) {
	client := &capturingClient{resp: okResponse("ok")}
	svc := NewService(client)

	_, err := svc.GenerateFromMedia(context.Background(), entity.MediaImage, entity.GenerationRequest{
		PromptText: "What colour is the cat?",
		Attachment: &entity.Attachment{Data: []byte("png"), MIMEType: "image/png"},
	})
	require.NoError(t, err)
	assert.Equal(t, "What colour is the cat?", client.calls[0][0].Parts[0].Text)
}

func TestService_GenerateFromMedia_MissingAttachment(t *testing.T) {
	client := &capturingClient{resp: okResponse("unused")}
	svc := NewService(client)

	_, err := svc.GenerateFromMedia(context.Background(), entity.MediaAudio, entity.GenerationRequest{PromptText: "x"})
	require.Error(t, err)

	appErr := apperrors.AsAppError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, entity.MediaAudio.MissingMessage, appErr.Message)
	assert.Empty(t, client.calls)
}

func TestService_UpstreamErrorKeepsMessage(t *testing.T) {
	upstream := errors.New("quota exceeded for model")
	client := &capturingClient{err: upstream}
	svc := NewService(client)

	_, err := svc.GenerateText(context.Background(), "hi")
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream)

	appErr := apperrors.AsAppError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	assert.Equal(t, "quota exceeded for model", appErr.Message)
}

func TestService_GenerateFromMedia_LogsAttachment(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, "debug", "json")
	t.Cleanup(func() { logger.Init("info", "json") })

	svc := NewService(&capturingClient{resp: okResponse("ok")})
	_, err := svc.GenerateFromMedia(context.Background(), entity.MediaDocument, entity.GenerationRequest{
		Attachment: &entity.Attachment{Data: []byte("%PDF"), MIMEType: "application/pdf", Filename: "report.pdf"},
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"msg":"attachment received"`)
	assert.Contains(t, buf.String(), `"filename":"report.pdf"`)
	assert.Contains(t, buf.String(), `"mime_type":"application/pdf"`)
}
