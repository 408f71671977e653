package feedback

import (
	"context"
	"encoding/json"

	"ai-math-tutor/config"
	core "ai-math-tutor/internal/core/question"
	"ai-math-tutor/pkg/apperror"
	"ai-math-tutor/pkg/apperror/status"

	"github.com/gofiber/fiber/v3"
)

// HandleGenerateFeedback evaluates a student's answer to a generated
// question and returns feedback with a follow-up question.
func HandleGenerateFeedback(c fiber.Ctx) error {
	var req core.FeedbackRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return apperror.BadRequest(config.ModuleFeedback, c, status.InvalidRequestBody, "Invalid request body")
	}
	if req.UserAnswer == "" || req.QuestionData == nil {
		return apperror.BadRequest(config.ModuleFeedback, c, status.MissingAnswer, "User answer and question data are required")
	}
	if req.APIKey == "" {
		return apperror.BadRequest(config.ModuleFeedback, c, status.MissingAPIKey, "API key is required")
	}

	resp, err := core.GenerateFeedback(context.Background(), req)
	if err != nil {
		return apperror.InternalError(config.ModuleFeedback, c, status.FeedbackFailed, "Failed to generate feedback", err)
	}
	return c.JSON(resp)
}
