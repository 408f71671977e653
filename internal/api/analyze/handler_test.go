package analyze

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"ai-math-tutor/pkg/apperror"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	RegisterRoutes(app.Group("/api"))
	return app
}

func decodeError(t *testing.T, body io.Reader) apperror.ErrorResponse {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)

	var resp apperror.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	return resp
}

func TestHandleAnalyzeImage_MissingAPIKey(t *testing.T) {
	app := newTestApp()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/analyze-image", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp.Body)
	assert.Equal(t, "API key is required", body.Error)
	assert.Equal(t, "MT-1", body.ErrorCode)
}

func TestHandleAnalyzeImage_MissingImage(t *testing.T) {
	app := newTestApp()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("apiKey", "sk-test"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/analyze-image", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp.Body)
	assert.Equal(t, "Image file is required", body.Error)
}

func TestHandleAnalyzeImage_RejectsNonImage(t *testing.T) {
	app := newTestApp()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("apiKey", "sk-test"))

	part, err := w.CreateFormFile("image", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("not an image"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/analyze-image", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp.Body)
	assert.Equal(t, "Only image files are allowed", body.Error)
}
