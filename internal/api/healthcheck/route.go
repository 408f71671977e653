package healthcheck

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterRoutes registers the liveness route on the provided router.
func RegisterRoutes(r fiber.Router) {
	r.Get("/health", HandleHealth)
}
