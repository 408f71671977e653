package question

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
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

func postJSON(t *testing.T, app *fiber.App, path, body string) (apperror.ErrorResponse, int) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var errResp apperror.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	return errResp, resp.StatusCode
}

func TestHandleGenerateQuestion_InvalidBody(t *testing.T) {
	errResp, code := postJSON(t, newTestApp(), "/api/generate-question", "{not json")

	require.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Invalid request body", errResp.Error)
	assert.Equal(t, "MT-0", errResp.ErrorCode)
}

func TestHandleGenerateQuestion_MissingOCRResult(t *testing.T) {
	errResp, code := postJSON(t, newTestApp(), "/api/generate-question", `{"apiKey": "sk-test"}`)

	require.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "OCR result is required", errResp.Error)
}

func TestHandleGenerateQuestion_MissingAPIKey(t *testing.T) {
	body := `{"ocrResult": {"latex": "", "text": "문제", "concepts": ["미분"]}}`
	errResp, code := postJSON(t, newTestApp(), "/api/generate-question", body)

	require.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "API key is required", errResp.Error)
}

func TestHandleGenerateSpecializedQuestions_MissingProblemData(t *testing.T) {
	errResp, code := postJSON(t, newTestApp(), "/api/generate-specialized-questions", `{"apiKey": "sk-test"}`)

	require.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Problem data with concepts is required", errResp.Error)
}

func TestHandleGenerateSpecializedQuestions_EmptyConcepts(t *testing.T) {
	body := `{"problemData": {"concepts": "", "problemText": "문제"}, "apiKey": "sk-test"}`
	errResp, code := postJSON(t, newTestApp(), "/api/generate-specialized-questions", body)

	require.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Problem data with concepts is required", errResp.Error)
}
