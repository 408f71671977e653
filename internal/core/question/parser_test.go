package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestionResponse(t *testing.T) {
	content := "**질문:**\n원주각이 90도일 때 호의 길이는 어떻게 되는가?\n\n" +
		"**핵심 개념:**\n원주각, 중심각\n\n" +
		"**추론 과정:**\n원주각과 중심각의 관계를 이용한다."

	parsed := ParseQuestionResponse(content)

	assert.Equal(t, "원주각이 90도일 때 호의 길이는 어떻게 되는가?", parsed.Question)
	assert.Equal(t, "원주각, 중심각", parsed.Concepts)
	assert.Equal(t, "원주각과 중심각의 관계를 이용한다.", parsed.Reasoning)
	assert.False(t, parsed.Partial)
}

// Sections may arrive in any order; each body still ends at the nearest
// following marker.
func TestParseQuestionResponse_Reordered(t *testing.T) {
	content := "**핵심 개념:**\n이차방정식\n\n**질문:**\n판별식이 0이면 근은 몇 개인가?"

	parsed := ParseQuestionResponse(content)

	assert.Equal(t, "판별식이 0이면 근은 몇 개인가?", parsed.Question)
	assert.Equal(t, "이차방정식", parsed.Concepts)
	assert.True(t, parsed.Partial)
}

// A completion without any markers becomes the question itself instead of
// being discarded.
func TestParseQuestionResponse_NoMarkers(t *testing.T) {
	content := "반지름이 두 배가 되면 원주각은 어떻게 변하는가?"

	parsed := ParseQuestionResponse(content)

	assert.Equal(t, content, parsed.Question)
	assert.Empty(t, parsed.Concepts)
	assert.Empty(t, parsed.Reasoning)
	assert.True(t, parsed.Partial)
}

func TestParseSpecializedResponse(t *testing.T) {
	content := "**1. 개념 진단 질문:**\n" +
		"1. 원주각의 정의를 설명할 수 있나요?\n" +
		"2. 중심각과 원주각은 어떤 관계인가요?\n\n" +
		"**2. 조건 변경 질문:**\n" +
		"1. 반지름이 두 배가 되면 원주각은 어떻게 변하나요?\n\n" +
		"**3. 오개념 탐색 질문:**\n" +
		"1. 원주각은 항상 중심각의 절반이라고 할 수 있나요?\n\n" +
		"**주의사항:**\n문제 범위를 벗어나지 마세요."

	parsed := ParseSpecializedResponse(content)

	require.Len(t, parsed.ConceptDiagnosis, 2)
	assert.Equal(t, "중심각과 원주각은 어떤 관계인가요?", parsed.ConceptDiagnosis[1])
	require.Len(t, parsed.ConditionChange, 1)
	require.Len(t, parsed.MisconceptionExploration, 1)
	assert.NotContains(t, parsed.MisconceptionExploration[0], "주의사항")
}

// Fragments of ten characters or fewer are noise from the delimiters, not
// questions.
func TestParseSpecializedResponse_DropsShortFragments(t *testing.T) {
	content := "**1. 개념 진단 질문:**\n" +
		"1. 짧음\n" +
		"2. 이차방정식의 판별식은 무엇을 알려주나요?"

	parsed := ParseSpecializedResponse(content)

	require.Len(t, parsed.ConceptDiagnosis, 1)
	assert.Equal(t, "이차방정식의 판별식은 무엇을 알려주나요?", parsed.ConceptDiagnosis[0])
}

func TestParseSpecializedResponse_EmptySections(t *testing.T) {
	parsed := ParseSpecializedResponse("아무 질문도 생성하지 못했습니다.")

	assert.NotNil(t, parsed.ConceptDiagnosis)
	assert.Empty(t, parsed.ConceptDiagnosis)
	assert.Empty(t, parsed.ConditionChange)
	assert.Empty(t, parsed.MisconceptionExploration)
}

func TestParseFeedbackResponse(t *testing.T) {
	content := "**피드백:**\n정확히 풀었습니다.\n\n" +
		"**개선점:**\n풀이 과정을 더 자세히 적어보세요.\n\n" +
		"**추가 질문:**\n조건이 바뀐다면 답은 어떻게 될까요?"

	parsed := ParseFeedbackResponse(content)

	assert.Equal(t, "정확히 풀었습니다.", parsed.Feedback)
	assert.Equal(t, "풀이 과정을 더 자세히 적어보세요.", parsed.Improvements)
	assert.Equal(t, "조건이 바뀐다면 답은 어떻게 될까요?", parsed.FollowUpQuestion)
	assert.False(t, parsed.Partial)
}

// A completion that follows the requested answer format parses back into
// every section the prompt asked for.
func TestQuestionPromptRoundTrip(t *testing.T) {
	completion := "**질문:**\n반지름이 r일 때 원주각이 60도인 호의 길이를 구하시오.\n\n" +
		"**핵심 개념:**\n원주각, 중심각, 호의 길이\n\n" +
		"**추론 과정:**\n원주각과 중심각의 관계로부터 중심각을 구하고 호의 길이 공식을 적용한다."

	parsed := ParseQuestionResponse(completion)

	require.False(t, parsed.Partial)
	assert.Equal(t, "반지름이 r일 때 원주각이 60도인 호의 길이를 구하시오.", parsed.Question)
	assert.Contains(t, parsed.Concepts, "원주각")
	assert.NotEmpty(t, parsed.Reasoning)
}

func TestParseFeedbackResponse_NoMarkers(t *testing.T) {
	content := "좋은 시도였습니다."

	parsed := ParseFeedbackResponse(content)

	assert.Equal(t, content, parsed.Feedback)
	assert.True(t, parsed.Partial)
}
