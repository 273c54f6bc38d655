package handler

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formFile struct {
	field    string
	filename string
	mimeType string
	data     []byte
}

func newMultipartRequest(t *testing.T, fields map[string]string, files ...formFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.filename))
		if f.mimeType != "" {
			h.Set("Content-Type", f.mimeType)
		}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestReadMultipartUpload(t *testing.T) {
	data := bytes.Repeat([]byte{0x00, 0x7f, 0xff}, 1024)
	req := newMultipartRequest(t,
		map[string]string{"prompt": "Summarize briefly", "other": "ignored"},
		formFile{field: "document", filename: "report.pdf", mimeType: "application/pdf", data: data},
	)

	upload, err := ReadMultipartUpload(req, "document")
	require.NoError(t, err)

	assert.Equal(t, "Summarize briefly", upload.Prompt)
	require.NotNil(t, upload.Attachment)
	assert.Equal(t, data, upload.Attachment.Data)
	assert.Equal(t, "application/pdf", upload.Attachment.MIMEType)
	assert.Equal(t, "report.pdf", upload.Attachment.Filename)
}

func TestReadMultipartUpload_DefaultMIMEType(t *testing.T) {
	req := newMultipartRequest(t, nil, formFile{field: "audio", filename: "a.bin", data: []byte("abc")})

	upload, err := ReadMultipartUpload(req, "audio")
	require.NoError(t, err)
	require.NotNil(t, upload.Attachment)
	assert.Equal(t, defaultUploadMIMEType, upload.Attachment.MIMEType)
}

func TestReadMultipartUpload_MissingFile(t *testing.T) {
	tests := []struct {
		name string
		req  func(t *testing.T) *http.Request
	}{
		{
			name: "no parts",
			req:  func(t *testing.T) *http.Request { return newMultipartRequest(t, nil) },
		},
		{
			name: "file under another field",
			req: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, nil, formFile{field: "document", filename: "x.png", mimeType: "image/png", data: []byte("x")})
			},
		},
		{
			name: "text field with the file name",
			req: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, map[string]string{"image": "not a file"})
			},
		},
		{
			name: "json body",
			req: func(t *testing.T) *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{"prompt":"x"}`))
				r.Header.Set("Content-Type", "application/json")
				return r
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upload, err := ReadMultipartUpload(tt.req(t), "image")
			require.NoError(t, err)
			assert.Nil(t, upload.Attachment)
		})
	}
}

func TestReadMultipartUpload_KeepsFirstFile(t *testing.T) {
	req := newMultipartRequest(t, nil,
		formFile{field: "image", filename: "a.png", mimeType: "image/png", data: []byte("first")},
		formFile{field: "image", filename: "b.png", mimeType: "image/png", data: []byte("second")},
	)

	upload, err := ReadMultipartUpload(req, "image")
	require.NoError(t, err)
	require.NotNil(t, upload.Attachment)
	assert.Equal(t, []byte("first"), upload.Attachment.Data)
}

func TestReadMultipartUpload_TruncatedBody(t *testing.T) {
	req := newMultipartRequest(t, nil, formFile{field: "image", filename: "a.png", mimeType: "image/png", data: []byte("data")})
	body := new(bytes.Buffer)
	_, err := body.ReadFrom(req.Body)
	require.NoError(t, err)

	truncated := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(body.Bytes()[:body.Len()/2]))
	truncated.Header.Set("Content-Type", req.Header.Get("Content-Type"))

	_, err = ReadMultipartUpload(truncated, "image")
	assert.Error(t, err)
}
