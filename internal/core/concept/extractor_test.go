package concept

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_Empty(t *testing.T) {
	result := Extract("", "")

	assert.NotNil(t, result.Concepts)
	assert.Empty(t, result.Concepts)
	assert.NotNil(t, result.Detailed)
	assert.Empty(t, result.Detailed)
	assert.Zero(t, result.Confidence)
}

func TestExtract_IntegralLatex(t *testing.T) {
	result := Extract(`\int x \, dx`, "")

	require.NotEmpty(t, result.Concepts)
	assert.Equal(t, "적분", result.Concepts[0])
	assert.InDelta(t, 1.0, result.Detailed[0].Confidence, 1e-9)
	assert.Equal(t, []string{SourceLatexPattern}, result.Detailed[0].Sources)
}

// A concept confirmed by several passes collects all their source tags and
// gains a per-source boost.
func TestExtract_MultiSourceBoost(t *testing.T) {
	result := Extract(`\frac{d}{dx} f(x)`, "다음 식을 미분하시오")

	require.NotEmpty(t, result.Detailed)
	top := result.Detailed[0]
	assert.Equal(t, "미분", top.Concept)
	assert.Len(t, top.Sources, 3)
	assert.InDelta(t, 1.0, top.Confidence, 1e-9)
}

func TestExtract_KeywordOnly(t *testing.T) {
	result := Extract("", "평균")

	require.Equal(t, []string{"통계"}, result.Concepts)
	assert.InDelta(t, 0.8, result.Confidence, 1e-9)
}

// More recognized concepts never lower the overall confidence.
func TestExtract_ConfidenceMonotonic(t *testing.T) {
	narrow := Extract("", "평균")
	wide := Extract("", "평균 내적")

	require.Len(t, wide.Concepts, 2)
	assert.GreaterOrEqual(t, wide.Confidence, narrow.Confidence)
	assert.InDelta(t, 0.95, wide.Confidence, 1e-9)
}

// Candidates ending up below the confidence floor are dropped from both
// the name list and the detailed breakdown.
func TestExtract_FiltersLowConfidence(t *testing.T) {
	result := Extract("", "곡선")

	for _, c := range result.Detailed {
		assert.GreaterOrEqual(t, c.Confidence, 0.3)
	}
	assert.Contains(t, result.Concepts, "적분")
}
