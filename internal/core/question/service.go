package question

import (
	"context"
	"strings"

	"ai-math-tutor/config"
	"ai-math-tutor/internal/core/curriculum"
	"ai-math-tutor/internal/core/llm"
	"ai-math-tutor/pkg/logger"
)

// Generate builds a Socratic guiding question for the recognized problem.
// The OCR concepts drive curriculum classification; the classified unit's
// sub-concepts become the question's main concepts, falling back to the raw
// OCR concepts when classification finds nothing.
func Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	concepts := req.OCRResult.Concepts
	analysis := curriculum.Classify(concepts)
	level := curriculum.DifficultyLevel(analysis.Grade)

	mainConcepts := strings.Join(analysis.SubConcepts, ", ")
	if mainConcepts == "" {
		mainConcepts = strings.Join(concepts, ", ")
	}

	logger.WithFields(map[string]interface{}{
		"grade": analysis.Grade,
		"unit":  analysis.Unit,
		"level": level,
	}).Info("generating guiding question")

	prompt := BuildQuestionPrompt(concepts, analysis, level, req.OCRResult.Text, req.OCRResult.Latex)
	content, err := llm.Complete(ctx, llm.Request{
		APIKey:      req.APIKey,
		Model:       config.Cfg.OpenAI.Model,
		System:      questionSystemPrompt,
		User:        prompt,
		MaxTokens:   config.Cfg.OpenAI.QuestionTokens,
		Temperature: config.Cfg.OpenAI.CompletionTemp,
	})
	if err != nil {
		return GenerateResponse{}, err
	}

	parsed := ParseQuestionResponse(content)
	if parsed.Partial {
		logger.Warn("%v: question completion missing expected sections, using best-effort parse", config.ModuleQuestion)
	}

	return GenerateResponse{
		Question: parsed.Question,
		Latex:    "",
		Concept:  mainConcepts,
		Level:    level,
	}, nil
}
