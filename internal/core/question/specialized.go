package question

import (
	"context"
	"strings"

	"ai-math-tutor/config"
	"ai-math-tutor/internal/core/curriculum"
	"ai-math-tutor/internal/core/llm"
	"ai-math-tutor/pkg/logger"
)

// splitConcepts turns the client's comma-separated concept string into a
// trimmed list, dropping empty entries.
func splitConcepts(s string) []string {
	concepts := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			concepts = append(concepts, part)
		}
	}
	return concepts
}

// GenerateSpecialized produces the three tutoring question categories
// (concept diagnosis, condition change, misconception exploration) scoped
// to the uploaded problem.
func GenerateSpecialized(ctx context.Context, req SpecializedRequest) (SpecializedResponse, error) {
	concepts := splitConcepts(req.ProblemData.Concepts)
	analysis := curriculum.Classify(concepts)
	level := curriculum.DifficultyLevel(analysis.Grade)

	logger.WithFields(map[string]interface{}{
		"concepts": len(concepts),
		"grade":    analysis.Grade,
		"unit":     analysis.Unit,
	}).Info("generating specialized questions")

	prompt := BuildSpecializedPrompt(concepts, analysis, level, *req.ProblemData)
	content, err := llm.Complete(ctx, llm.Request{
		APIKey:      req.APIKey,
		Model:       config.Cfg.OpenAI.Model,
		System:      specializedSystemPrompt,
		User:        prompt,
		MaxTokens:   config.Cfg.OpenAI.SpecializedTokens,
		Temperature: config.Cfg.OpenAI.CompletionTemp,
	})
	if err != nil {
		return SpecializedResponse{}, err
	}

	parsed := ParseSpecializedResponse(content)
	if len(parsed.ConceptDiagnosis)+len(parsed.ConditionChange)+len(parsed.MisconceptionExploration) == 0 {
		logger.Warn("%v: specialized completion yielded no questions", config.ModuleQuestion)
	}
	return parsed, nil
}
