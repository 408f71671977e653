package question

import (
	"context"
	"encoding/json"

	"ai-math-tutor/config"
	core "ai-math-tutor/internal/core/question"
	"ai-math-tutor/pkg/apperror"
	"ai-math-tutor/pkg/apperror/status"

	"github.com/gofiber/fiber/v3"
)

// HandleGenerateQuestion turns a previous OCR result into one Socratic
// guiding question.
func HandleGenerateQuestion(c fiber.Ctx) error {
	var req core.GenerateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return apperror.BadRequest(config.ModuleQuestion, c, status.InvalidRequestBody, "Invalid request body")
	}
	if req.OCRResult == nil {
		return apperror.BadRequest(config.ModuleQuestion, c, status.MissingOCRResult, "OCR result is required")
	}
	if req.APIKey == "" {
		return apperror.BadRequest(config.ModuleQuestion, c, status.MissingAPIKey, "API key is required")
	}

	resp, err := core.Generate(context.Background(), req)
	if err != nil {
		return apperror.InternalError(config.ModuleQuestion, c, status.QuestionFailed, "Failed to generate question", err)
	}
	return c.JSON(resp)
}

// HandleGenerateSpecializedQuestions produces the three tutoring question
// categories for an analyzed problem.
func HandleGenerateSpecializedQuestions(c fiber.Ctx) error {
	var req core.SpecializedRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return apperror.BadRequest(config.ModuleQuestion, c, status.InvalidRequestBody, "Invalid request body")
	}
	if req.ProblemData == nil || req.ProblemData.Concepts == "" {
		return apperror.BadRequest(config.ModuleQuestion, c, status.MissingConcepts, "Problem data with concepts is required")
	}
	if req.APIKey == "" {
		return apperror.BadRequest(config.ModuleQuestion, c, status.MissingAPIKey, "API key is required")
	}

	resp, err := core.GenerateSpecialized(context.Background(), req)
	if err != nil {
		return apperror.InternalError(config.ModuleQuestion, c, status.SpecializedFailed, "Failed to generate specialized questions", err)
	}
	return c.JSON(resp)
}
