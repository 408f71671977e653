package analyze

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterRoutes registers image-analysis routes on the provided router.
func RegisterRoutes(r fiber.Router) {
	r.Post("/analyze-image", HandleAnalyzeImage)
}
