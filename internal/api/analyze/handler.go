package analyze

import (
	"context"
	"io"
	"strings"

	"ai-math-tutor/config"
	"ai-math-tutor/internal/core/concept"
	"ai-math-tutor/internal/core/vision"
	"ai-math-tutor/pkg/apperror"
	"ai-math-tutor/pkg/apperror/status"
	"ai-math-tutor/pkg/logger"

	"github.com/gofiber/fiber/v3"
)

// HandleAnalyzeImage accepts a multipart problem photo plus the caller's
// API key, runs vision extraction and enriches the detected concepts with
// rule-based extraction from the recognized text and latex.
func HandleAnalyzeImage(c fiber.Ctx) error {
	apiKey := c.FormValue("apiKey")
	if apiKey == "" {
		return apperror.BadRequest(config.ModuleAnalyze, c, status.MissingAPIKey, "API key is required")
	}

	fh, err := c.FormFile("image")
	if err != nil || fh == nil || fh.Size == 0 {
		return apperror.BadRequest(config.ModuleAnalyze, c, status.MissingImage, "Image file is required")
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType != "" && !strings.HasPrefix(mimeType, "image/") {
		return apperror.BadRequest(config.ModuleAnalyze, c, status.UnsupportedImage, "Only image files are allowed")
	}
	if fh.Size > int64(config.Cfg.Upload.MaxImageBytes) {
		return apperror.BadRequest(config.ModuleAnalyze, c, status.ImageTooLarge, "Image file is too large")
	}

	file, err := fh.Open()
	if err != nil {
		return apperror.BadRequest(config.ModuleAnalyze, c, status.MissingImage, "Image file is required")
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return apperror.InternalError(config.ModuleAnalyze, c, status.AnalyzeFailed, "Failed to analyze image", err)
	}

	logger.WithFields(map[string]interface{}{
		"filename": fh.Filename,
		"size":     fh.Size,
		"mime":     mimeType,
	}).Info("analyzing uploaded image")

	result, err := vision.AnalyzeImage(context.Background(), image, mimeType, apiKey)
	if err != nil {
		return apperror.InternalError(config.ModuleAnalyze, c, status.AnalyzeFailed, "Failed to analyze image", err)
	}

	// Rule-based extraction over the recognized text refines the model's
	// concept list; the model's own list stays when the rules find nothing.
	if extracted := concept.Extract(result.Latex, result.Text); len(extracted.Concepts) > 0 {
		result.Concepts = extracted.Concepts
	}

	return c.JSON(result)
}
