package question

import (
	"context"

	"ai-math-tutor/config"
	"ai-math-tutor/internal/core/llm"
	"ai-math-tutor/pkg/logger"
)

// GenerateFeedback evaluates a student's answer against the question they
// were asked and returns feedback, improvement points and a follow-up
// question.
func GenerateFeedback(ctx context.Context, req FeedbackRequest) (FeedbackResponse, error) {
	prompt := BuildFeedbackPrompt(req.QuestionData.Question, req.UserAnswer)
	content, err := llm.Complete(ctx, llm.Request{
		APIKey:      req.APIKey,
		Model:       config.Cfg.OpenAI.Model,
		System:      feedbackSystemPrompt,
		User:        prompt,
		MaxTokens:   config.Cfg.OpenAI.FeedbackTokens,
		Temperature: config.Cfg.OpenAI.CompletionTemp,
	})
	if err != nil {
		return FeedbackResponse{}, err
	}

	parsed := ParseFeedbackResponse(content)
	if parsed.Partial {
		logger.Warn("%v: feedback completion missing expected sections, using best-effort parse", config.ModuleFeedback)
	}
	return FeedbackResponse{
		Feedback:         parsed.Feedback,
		Improvements:     parsed.Improvements,
		FollowUpQuestion: parsed.FollowUpQuestion,
	}, nil
}
