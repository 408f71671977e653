package question

import (
	"fmt"
	"strings"

	"ai-math-tutor/internal/core/curriculum"
)

const (
	questionSystemPrompt    = "당신은 수학 교육 전문가입니다. 학생들의 이해를 돕는 명확하고 교육적인 질문을 생성합니다."
	specializedSystemPrompt = "당신은 수학 전문 튜터입니다. 업로드된 문제 안에서만 질문을 출제하며, 실생활 예시나 다른 분야로의 확장을 절대 금지합니다. 해당 문제의 조건 변경과 개념적 이해에만 집중하여, 학습자가 해당 문제에 대해 더 깊이 사고하도록 유도합니다."
	feedbackSystemPrompt    = "당신은 수학 교육 전문가입니다. 학생들의 답변에 대해 친절하고 건설적인 피드백을 제공하고, 학습을 돕는 후속 질문을 제시합니다."
)

const unclassified = "미분류"

func orUnclassified(s string) string {
	if s == "" {
		return unclassified
	}
	return s
}

// curriculumSummary renders the shared analysis block embedded in prompts.
func curriculumSummary(analysis curriculum.Analysis, level string) string {
	return fmt.Sprintf(`**커리큘럼 분석 결과:**
- 학년: %s
- 단원: %s
- 세부 개념: %s
- 난이도: %s`,
		orUnclassified(analysis.Grade),
		orUnclassified(analysis.Unit),
		orUnclassified(strings.Join(analysis.SubConcepts, ", ")),
		level,
	)
}

// BuildQuestionPrompt assembles the follow-up question prompt. The literal
// constraints forbid the model from leaving the detected concept scope.
func BuildQuestionPrompt(concepts []string, analysis curriculum.Analysis, level, problemText, latex string) string {
	joined := strings.Join(concepts, ", ")

	var b strings.Builder
	b.WriteString("다음 수학 문제를 바탕으로, 해당 문제 안에서만 질문을 생성해주세요.\n\n")
	b.WriteString("**업로드된 이미지에서 추출된 개념들:**\n")
	b.WriteString(joined)
	b.WriteString("\n\n")
	b.WriteString(curriculumSummary(analysis, level))
	b.WriteString("\n\n**원본 문제 내용:**\n")
	if problemText != "" {
		b.WriteString(problemText)
	} else {
		b.WriteString("이미지에서 추출된 텍스트")
	}
	b.WriteString("\n\n")
	if latex != "" {
		b.WriteString("**수학 표현식:**\n")
		b.WriteString(latex)
		b.WriteString("\n\n")
	}
	b.WriteString(fmt.Sprintf(`[질문 생성 지침]
- 반드시 업로드된 이미지에서 추출된 개념들(%s)을 바탕으로 질문을 생성할 것
- 해당 문제의 조건을 바꾸어 답이나 풀이, 개념이 어떻게 변경되는지 물어보는 질문
- '왜 그렇게 되는지?' 또는 '조건이 바뀐다면?' 식으로 사고를 유도할 것
- 해당 개념에서 헷갈릴 만한 포인트를 정확히 집어낼 것

다음 형식으로 답변해주세요:

**질문:**
[업로드된 이미지의 개념을 바탕으로 한 구체적인 수학 문제]

**핵심 개념:**
[이 문제에서 테스트하는 핵심 수학 개념들 - 반드시 업로드된 이미지의 개념 포함]

**추론 과정:**
[학생이 따라야 할 논리적 추론 과정]

**엄격한 제한사항:**
- 반드시 업로드된 이미지에서 추출된 개념들(%s)을 바탕으로 출제하세요
- 실생활 예시나 다른 분야로의 확장을 절대 금지합니다
- 해당 문제의 조건 변경과 이해에만 집중하세요
- 추출된 개념과 전혀 관련 없는 문제(예: 원주각 문제인데 사각형 둘레 문제)를 출제하지 마세요`, joined, joined))

	return b.String()
}

// BuildSpecializedPrompt assembles the three-category question prompt.
func BuildSpecializedPrompt(concepts []string, analysis curriculum.Analysis, level string, data ProblemData) string {
	joined := strings.Join(concepts, ", ")

	var b strings.Builder
	b.WriteString("다음 수학 문제를 바탕으로, 해당 문제 안에서만 질문을 생성해주세요.\n\n")
	b.WriteString("**업로드된 이미지에서 추출된 개념들:**\n")
	b.WriteString(joined)
	b.WriteString("\n\n")
	b.WriteString(curriculumSummary(analysis, level))
	b.WriteString("\n\n**원본 문제:**\n")
	if data.ProblemText != "" {
		b.WriteString(data.ProblemText)
	} else {
		b.WriteString("이미지에서 추출된 문제")
	}
	b.WriteString("\n\n")
	if data.Latex != "" {
		b.WriteString("**수학 표현식:**\n")
		b.WriteString(data.Latex)
		b.WriteString("\n\n")
	}
	b.WriteString(fmt.Sprintf(`다음 세 가지 유형의 질문을 각각 1~2개씩 생성해주세요:

## 1. 개념 진단 질문
- 학생이 해당 문제에서 사용되는 핵심 개념을 정확히 이해하고 있는지 확인하는 질문
- 해당 문제 내에서 나타나는 정의나 성질에 대한 정확한 이해를 테스트

## 2. 조건 변경 질문
- 해당 문제의 조건을 바꾸어 답이나 풀이, 개념이 어떻게 변경되는지 물어보는 질문
- "만약 이 문제에서 ~가 바뀐다면 답은 어떻게 될까?" 형태
- 수식을 바꾸거나 조건을 변경했을 때의 변화에 집중

## 3. 오개념 탐색 질문
- 해당 문제를 풀 때 학생들이 자주 틀리는 부분이나 헷갈리는 개념을 집어내는 질문
- 해당 문제 내에서 발생할 수 있는 오개념을 유발하는 상황을 제시

다음 형식으로 답변해주세요:

**1. 개념 진단 질문:**
[질문 1]
[질문 2]

**2. 조건 변경 질문:**
[질문 1]
[질문 2]

**3. 오개념 탐색 질문:**
[질문 1]
[질문 2]

**엄격한 제한사항:**
- 반드시 업로드된 이미지에서 추출된 개념들(%s)을 바탕으로 출제하세요
- 실생활 예시나 다른 분야로의 확장을 절대 금지합니다
- 추출된 개념과 전혀 관련 없는 문제(예: 원주각 문제인데 사각형 둘레 문제)를 출제하지 마세요
- 해당 문제의 조건 변경과 개념적 이해에만 집중하세요
- 문제의 목적은 학습자가 해당 문제에 대해 더 깊이 사고하는 것을 유도하는 것입니다`, joined))

	return b.String()
}

// BuildFeedbackPrompt assembles the answer-evaluation prompt.
func BuildFeedbackPrompt(questionText, userAnswer string) string {
	return fmt.Sprintf(`
다음 수학 문제에 대한 학생의 답변을 평가하고 피드백을 제공해주세요:

**문제:**
%s

**학생 답변:**
%s

다음 형식으로 답변해주세요:

**피드백:**
[학생 답변에 대한 구체적이고 건설적인 피드백 - 정확한 부분과 개선이 필요한 부분을 명확히 구분]

**개선점:**
[학생이 개선할 수 있는 부분들 - 해당 문제 내에서의 구체적인 학습 방향 제시]

**추가 질문:**
[해당 문제와 관련된 후속 질문 - '왜 그렇게 되는지?' 또는 '조건이 바뀐다면?' 형태로 해당 문제에 대한 더 깊은 이해 유도]

**엄격한 제한사항:**
- 반드시 해당 문제 내에서만 피드백과 후속 질문을 제공하세요
- 실생활 예시나 다른 분야로의 확장을 절대 금지합니다
- 해당 문제의 조건 변경과 개념적 이해에만 집중하세요
`, questionText, userAnswer)
}
