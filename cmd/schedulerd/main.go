package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/Barritosaurus/cpu-scheduler/api"
	"github.com/Barritosaurus/cpu-scheduler/config"
	schedlog "github.com/Barritosaurus/cpu-scheduler/internal/log"
)

func main() {
	cfg := config.GetSchedulerConfig()
	logger := schedlog.BuildLogger(cfg.LogLevel)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api.Register(app, api.NewSchedulerHandlerImpl(cfg, logger))

	logger.Info("scheduler service listening",
		slog.Int("port", cfg.Port),
		slog.Int64("default_quantum", cfg.RoundRobinTimeQuantum),
	)
	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
