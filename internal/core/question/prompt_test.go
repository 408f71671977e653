package question

import (
	"testing"

	"ai-math-tutor/internal/core/curriculum"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuestionPrompt(t *testing.T) {
	analysis := curriculum.Analysis{
		Grade:       "중학교 3학년",
		Subject:     "기하",
		Unit:        "원의 성질",
		SubConcepts: []string{"원주각", "반지름"},
		Confidence:  2.5,
	}

	prompt := BuildQuestionPrompt([]string{"원주각", "반지름"}, analysis, "Intermediate", "원에 내접한 사각형", "")

	assert.Contains(t, prompt, "원주각, 반지름")
	assert.Contains(t, prompt, "중학교 3학년")
	assert.Contains(t, prompt, "원의 성질")
	assert.Contains(t, prompt, "원에 내접한 사각형")
	assert.NotContains(t, prompt, "**수학 표현식:**")
}

func TestBuildQuestionPrompt_Defaults(t *testing.T) {
	prompt := BuildQuestionPrompt(nil, curriculum.Analysis{}, "Intermediate", "", `x^2`)

	assert.Contains(t, prompt, "미분류")
	assert.Contains(t, prompt, "이미지에서 추출된 텍스트")
	assert.Contains(t, prompt, "**수학 표현식:**")
	assert.Contains(t, prompt, "x^2")
}

func TestBuildFeedbackPrompt(t *testing.T) {
	prompt := BuildFeedbackPrompt("원주각의 크기는?", "중심각의 절반입니다")

	assert.Contains(t, prompt, "원주각의 크기는?")
	assert.Contains(t, prompt, "중심각의 절반입니다")
	assert.Contains(t, prompt, "**피드백:**")
}

func TestSplitConcepts(t *testing.T) {
	assert.Equal(t, []string{"원주각", "반지름"}, splitConcepts("원주각, 반지름"))
	assert.Equal(t, []string{"미분"}, splitConcepts(" 미분 , "))
	assert.Empty(t, splitConcepts(""))
}
