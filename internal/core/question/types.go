package question

import "ai-math-tutor/internal/core/vision"

// GenerateRequest is the payload of the question-generation endpoint.
type GenerateRequest struct {
	OCRResult *vision.OCRResult `json:"ocrResult"`
	APIKey    string            `json:"apiKey"`
}

// GenerateResponse is the generated follow-up question for one problem.
type GenerateResponse struct {
	Question string `json:"question"`
	Latex    string `json:"latex"`
	Concept  string `json:"concept"`
	Level    string `json:"level"`
}

// ProblemData carries the analyzed problem into specialized generation.
// Concepts is a comma-separated string, as the chat client sends it.
type ProblemData struct {
	Concepts    string `json:"concepts"`
	ProblemText string `json:"problemText"`
	Latex       string `json:"latex"`
}

// SpecializedRequest is the payload of the specialized-questions endpoint.
type SpecializedRequest struct {
	ProblemData *ProblemData `json:"problemData"`
	APIKey      string       `json:"apiKey"`
}

// SpecializedResponse groups the three generated question categories.
type SpecializedResponse struct {
	ConceptDiagnosis         []string `json:"conceptDiagnosis"`
	ConditionChange          []string `json:"conditionChange"`
	MisconceptionExploration []string `json:"misconceptionExploration"`
}

// QuestionData is the question being answered in a feedback request.
type QuestionData struct {
	Question string `json:"question"`
}

// FeedbackRequest is the payload of the feedback endpoint.
type FeedbackRequest struct {
	UserAnswer   string        `json:"userAnswer"`
	QuestionData *QuestionData `json:"questionData"`
	APIKey       string        `json:"apiKey"`
}

// FeedbackResponse is the evaluated answer feedback.
type FeedbackResponse struct {
	Feedback         string `json:"feedback"`
	Improvements     string `json:"improvements"`
	FollowUpQuestion string `json:"followUpQuestion"`
}
