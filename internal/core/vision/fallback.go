package vision

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fallbackKeywords is scanned over the raw model content when the JSON
// decode fails; hits populate the concepts field.
var fallbackKeywords = []string{
	"함수", "방정식", "부등식", "미분", "적분", "극한", "수열", "급수",
	"확률", "통계", "기하", "벡터", "행렬", "이차함수", "삼각함수",
	"지수함수", "로그함수", "function", "equation", "derivative",
	"integral", "limit", "sequence", "series", "probability",
}

var mathSpanRe = regexp.MustCompile(`\$\$([^$]+)\$\$|\$([^$]+)\$`)

// ParseContent decodes the model content into an OCRResult. The strict
// branch requires well-formed JSON with the expected shape; anything else
// takes the heuristic branch: delimited math spans become the latex field,
// a fixed keyword scan fills concepts, and the raw content becomes text.
// The second return value reports which branch was taken.
func ParseContent(content string) (OCRResult, bool) {
	trimmed := stripCodeFences(strings.TrimSpace(content))

	var strict OCRResult
	if err := json.Unmarshal([]byte(trimmed), &strict); err == nil {
		if strict.Concepts == nil {
			strict.Concepts = []string{}
		}
		return strict, true
	}

	result := OCRResult{
		Text:     content,
		Concepts: []string{},
	}

	if spans := mathSpanRe.FindAllString(content, -1); len(spans) > 0 {
		result.Latex = strings.Join(spans, "\n")
	}

	lower := strings.ToLower(content)
	for _, kw := range fallbackKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			result.Concepts = append(result.Concepts, kw)
		}
	}
	return result, false
}

// stripCodeFences removes a ```json ... ``` wrapper some models add around
// the JSON payload.
func stripCodeFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
