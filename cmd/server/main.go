package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abraxas-365/medjobb/internal/platform"
	"github.com/Abraxas-365/medjobb/pkg/config"
	"github.com/Abraxas-365/medjobb/pkg/fiberx"
	"github.com/Abraxas-365/medjobb/pkg/logx"
	"github.com/Abraxas-365/medjobb/recruitment/ad/adapi"
	"github.com/Abraxas-365/medjobb/recruitment/job/jobapi"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Config and Initialize Logger
	cfg, err := config.Load()
	if err != nil {
		logx.Fatalf("Invalid configuration: %v", err)
	}
	platform.ConfigureLogging(cfg.Log)
	logx.Info("Starting medjobb API server...")

	// 2. Initialize Dependency Container
	ctx := context.Background()
	container := NewContainer(ctx, cfg)
	defer container.Close(ctx)

	// 3. Create Fiber App with Config
	app := newApp(container)

	// 4. Start Server with Graceful Shutdown
	go func() {
		logx.Infof("Server listening on port %s", cfg.Server.Port)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Wait for signal
	logx.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

func newApp(container *Container) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "medjobb API",
		DisableStartupMessage: true,
		ErrorHandler:          fiberx.ErrorHandler,
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		return c.JSON(container.Health(ctx))
	})

	// Jobs: /api/jobs
	jobapi.RegisterRoutes(app, container.JobHandlers)

	// Ads: /api/ads
	adapi.RegisterRoutes(app, container.AdHandlers)

	return app
}
