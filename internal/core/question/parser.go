package question

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Literal section markers emitted by the completion templates.
const (
	headerQuestion   = "**질문:**"
	headerConcepts   = "**핵심 개념:**"
	headerReasoning  = "**추론 과정:**"
	headerDiagnosis  = "**1. 개념 진단 질문:**"
	headerCondition  = "**2. 조건 변경 질문:**"
	headerMisconcept = "**3. 오개념 탐색 질문:**"
	headerCaution    = "**주의사항:**"
	headerRestrict   = "**엄격한 제한사항:**"
	headerFeedback   = "**피드백:**"
	headerImprove    = "**개선점:**"
	headerFollowUp   = "**추가 질문:**"
)

// QuestionSections is the parsed question completion. Partial marks a
// best-effort parse where at least one expected header was missing; it is
// never an error.
type QuestionSections struct {
	Question  string
	Concepts  string
	Reasoning string
	Partial   bool
}

// FeedbackSections is the parsed feedback completion.
type FeedbackSections struct {
	Feedback         string
	Improvements     string
	FollowUpQuestion string
	Partial          bool
}

// extractSections locates every known header in content and returns each
// present header's body: the text from the end of the header up to the
// start of the nearest following known header, or the end of the string.
// Reordered headers parse the same way; absent headers are simply missing
// from the map.
func extractSections(content string, headers []string) map[string]string {
	starts := make(map[string]int)
	for _, h := range headers {
		if i := strings.Index(content, h); i >= 0 {
			starts[h] = i
		}
	}

	sections := make(map[string]string, len(starts))
	for h, i := range starts {
		bodyStart := i + len(h)
		bodyEnd := len(content)
		for _, j := range starts {
			if j > i && j < bodyEnd && j >= bodyStart {
				bodyEnd = j
			}
		}
		sections[h] = strings.TrimSpace(content[bodyStart:bodyEnd])
	}
	return sections
}

// ParseQuestionResponse extracts the question, concepts and reasoning
// sections. When the question header is missing the whole completion is
// used as the question, so a free-form answer is never lost.
func ParseQuestionResponse(content string) QuestionSections {
	headers := []string{headerQuestion, headerConcepts, headerReasoning}
	sections := extractSections(content, headers)

	out := QuestionSections{
		Question:  sections[headerQuestion],
		Concepts:  sections[headerConcepts],
		Reasoning: sections[headerReasoning],
	}
	for _, h := range headers {
		if _, ok := sections[h]; !ok {
			out.Partial = true
		}
	}
	if _, ok := sections[headerQuestion]; !ok {
		out.Question = content
	}
	return out
}

// ParseSpecializedResponse extracts the three question categories and
// splits each body into individual question strings.
func ParseSpecializedResponse(content string) SpecializedResponse {
	headers := []string{headerDiagnosis, headerCondition, headerMisconcept, headerCaution, headerRestrict}
	sections := extractSections(content, headers)

	return SpecializedResponse{
		ConceptDiagnosis:         splitQuestions(sections[headerDiagnosis]),
		ConditionChange:          splitQuestions(sections[headerCondition]),
		MisconceptionExploration: splitQuestions(sections[headerMisconcept]),
	}
}

// ParseFeedbackResponse extracts feedback, improvements and the follow-up
// question. A completion without any markers becomes the feedback body.
func ParseFeedbackResponse(content string) FeedbackSections {
	headers := []string{headerFeedback, headerImprove, headerFollowUp}
	sections := extractSections(content, headers)

	out := FeedbackSections{
		Feedback:         sections[headerFeedback],
		Improvements:     sections[headerImprove],
		FollowUpQuestion: sections[headerFollowUp],
	}
	for _, h := range headers {
		if _, ok := sections[h]; !ok {
			out.Partial = true
		}
	}
	if _, ok := sections[headerFeedback]; !ok {
		out.Feedback = content
	}
	return out
}

var questionDelimiterRe = regexp.MustCompile(`\n\s*\[질문\s*\d+\]|\n\s*[•·]\s*|\n\s*\d+\.\s*`)

// splitQuestions breaks a section body on bullet, numbered-list and
// [질문 N] delimiters, dropping fragments of 10 characters or fewer.
func splitQuestions(body string) []string {
	questions := []string{}
	for _, part := range questionDelimiterRe.Split(body, -1) {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) > 10 {
			questions = append(questions, part)
		}
	}
	return questions
}
