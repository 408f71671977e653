package main

import (
	"fmt"

	"ai-math-tutor/config"
	"ai-math-tutor/internal/api/analyze"
	"ai-math-tutor/internal/api/feedback"
	"ai-math-tutor/internal/api/healthcheck"
	"ai-math-tutor/internal/api/question"
	"ai-math-tutor/internal/middleware"
	"ai-math-tutor/pkg/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		AppName:     config.Cfg.Server.AppName,
		BodyLimit:   config.Cfg.Server.BodyLimit,
		Concurrency: config.Cfg.Server.Concurrency,
	})

	app.Use(middleware.PanicRecovery())
	app.Use(middleware.ConnectionLimit(middleware.NewConnectionLimiter(config.Cfg.Server.Concurrency)))
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.Cfg.Cors.AllowOrigins,
		AllowMethods: config.Cfg.Cors.AllowMethods,
		AllowHeaders: config.Cfg.Cors.AllowHeaders,
	}))

	// routes
	api := app.Group("/api")
	healthcheck.RegisterRoutes(api)
	analyze.RegisterRoutes(api)
	question.RegisterRoutes(api)
	feedback.RegisterRoutes(api)

	addr := fmt.Sprintf(":%d", config.Cfg.Server.Port)
	logger.Info("%v: listening on %s", config.ModuleServer, addr)
	if err := app.Listen(addr); err != nil {
		logger.Fatal(err, "server error")
	}
}
