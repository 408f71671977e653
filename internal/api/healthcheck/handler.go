package healthcheck

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// HandleHealth reports liveness. The server keeps no state and no
// connections, so there is nothing deeper to probe.
func HandleHealth(c fiber.Ctx) error {
	return c.JSON(healthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
