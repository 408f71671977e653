package feedback

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

func postJSON(t *testing.T, body string) (apperror.ErrorResponse, int) {
	t.Helper()
	app := fiber.New()
	RegisterRoutes(app.Group("/api"))

	req := httptest.NewRequest("POST", "/api/generate-feedback", strings.NewReader(body))
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

func TestHandleGenerateFeedback_MissingAnswer(t *testing.T) {
	errResp, code := postJSON(t, `{"questionData": {"question": "문제"}, "apiKey": "sk-test"}`)

	require.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "User answer and question data are required", errResp.Error)
	assert.Equal(t, "MT-5", errResp.ErrorCode)
}

func TestHandleGenerateFeedback_MissingQuestionData(t *testing.T) {
	errResp, code := postJSON(t, `{"userAnswer": "답", "apiKey": "sk-test"}`)

	require.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "User answer and question data are required", errResp.Error)
}

func TestHandleGenerateFeedback_MissingAPIKey(t *testing.T) {
	errResp, code := postJSON(t, `{"userAnswer": "답", "questionData": {"question": "문제"}}`)

	require.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "API key is required", errResp.Error)
}
