package vision

import (
	"context"
	"encoding/base64"
	"fmt"

	"ai-math-tutor/config"
	"ai-math-tutor/pkg/logger"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// extractionPrompt instructs the vision model to return the canonical JSON
// shape; the fallback parser handles answers that ignore it.
const extractionPrompt = `이 이미지에서 다음을 추출해주세요:

1. LaTeX 형식의 수학 표현식 (있는 경우)
2. 자연어 텍스트 (한국어 또는 영어)
3. 수학적 개념 키워드

다음 JSON 형식으로 응답해주세요:
{
  "latex": "수학 표현식들...",
  "text": "자연어 텍스트...",
  "concepts": ["개념1", "개념2", ...]
}

수학 표현식이 없다면 latex 필드는 빈 문자열로, 자연어 텍스트가 없다면 text 필드는 빈 문자열로 응답해주세요.`

type imageURL struct {
	URL string `json:"url"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type visionMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type visionRequest struct {
	Model       string          `json:"model"`
	Messages    []visionMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

type visionChoice struct {
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
}

type visionResponse struct {
	Choices []visionChoice `json:"choices"`
}

// AnalyzeImage sends one image to the vision backend and normalizes the
// answer into an OCRResult. Non-success upstream responses and transport
// errors surface as *ServiceError; malformed model content never fails the
// call, it falls back to heuristic extraction.
func AnalyzeImage(ctx context.Context, image []byte, mimeType, apiKey string) (OCRResult, error) {
	key := apiKey
	if key == "" {
		key = config.Cfg.OpenAI.Key
	}
	if key == "" {
		return OCRResult{}, &ServiceError{Op: "analyze", Err: fmt.Errorf("missing openai key")}
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	encoded := base64.StdEncoding.EncodeToString(image)
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, encoded)

	client := openai.NewClient(option.WithAPIKey(key))
	body := visionRequest{
		Model:       config.Cfg.OpenAI.VisionModel,
		MaxTokens:   config.Cfg.OpenAI.VisionMaxTokens,
		Temperature: config.Cfg.OpenAI.VisionTemp,
		Messages: []visionMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: extractionPrompt},
					{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
				},
			},
		},
	}

	var out visionResponse
	if err := client.Post(ctx, "/chat/completions", body, &out); err != nil {
		logger.Error(err, "%v: vision call failed", config.ModuleVision)
		return OCRResult{}, &ServiceError{Op: "analyze", Err: err}
	}
	if len(out.Choices) == 0 {
		return OCRResult{}, &ServiceError{Op: "analyze", Err: fmt.Errorf("no choices returned")}
	}

	content := out.Choices[0].Message.Content
	result, parsed := ParseContent(content)
	if !parsed {
		logger.WithFields(map[string]interface{}{
			"content_len": len(content),
		}).Warnf("%v: model content is not well-formed JSON, using fallback extraction", config.ModuleVision)
	}
	return result, nil
}
