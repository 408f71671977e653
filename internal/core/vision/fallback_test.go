package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContent_StrictJSON(t *testing.T) {
	content := `{"latex": "x^2 + 2x + 1 = 0", "text": "이차방정식을 풀어라", "concepts": ["이차방정식", "인수분해"]}`

	result, parsed := ParseContent(content)

	require.True(t, parsed)
	assert.Equal(t, "x^2 + 2x + 1 = 0", result.Latex)
	assert.Equal(t, "이차방정식을 풀어라", result.Text)
	assert.Equal(t, []string{"이차방정식", "인수분해"}, result.Concepts)
}

func TestParseContent_CodeFencedJSON(t *testing.T) {
	content := "```json\n{\"latex\": \"\", \"text\": \"문제 텍스트\", \"concepts\": [\"미분\"]}\n```"

	result, parsed := ParseContent(content)

	require.True(t, parsed)
	assert.Equal(t, "문제 텍스트", result.Text)
	assert.Equal(t, []string{"미분"}, result.Concepts)
}

func TestParseContent_StrictJSONNilConcepts(t *testing.T) {
	result, parsed := ParseContent(`{"latex": "", "text": "텍스트"}`)

	require.True(t, parsed)
	assert.NotNil(t, result.Concepts)
	assert.Empty(t, result.Concepts)
}

// Free-form answers keep the full content as text, extract delimited math
// spans and scan for known concept keywords.
func TestParseContent_Fallback(t *testing.T) {
	content := "이 문제는 $x^2 + 1$ 형태의 함수에 대한 적분 문제입니다."

	result, parsed := ParseContent(content)

	require.False(t, parsed)
	assert.Equal(t, content, result.Text)
	assert.Equal(t, "$x^2 + 1$", result.Latex)
	assert.Contains(t, result.Concepts, "함수")
	assert.Contains(t, result.Concepts, "적분")
}

func TestParseContent_FallbackNoMath(t *testing.T) {
	result, parsed := ParseContent("잘 모르겠습니다")

	require.False(t, parsed)
	assert.Empty(t, result.Latex)
	assert.NotNil(t, result.Concepts)
	assert.Empty(t, result.Concepts)
}
