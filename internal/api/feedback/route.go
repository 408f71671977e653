package feedback

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterRoutes registers feedback routes on the provided router.
func RegisterRoutes(r fiber.Router) {
	r.Post("/generate-feedback", HandleGenerateFeedback)
}
