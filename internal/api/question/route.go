package question

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterRoutes registers question-generation routes on the provided router.
func RegisterRoutes(r fiber.Router) {
	r.Post("/generate-question", HandleGenerateQuestion)
	r.Post("/generate-specialized-questions", HandleGenerateSpecializedQuestions)
}
