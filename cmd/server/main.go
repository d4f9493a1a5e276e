package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/heenakousar16/beauty/internal/app"
	"github.com/heenakousar16/beauty/internal/config"
	"github.com/heenakousar16/beauty/internal/container"
	"github.com/heenakousar16/beauty/internal/utils"
)

func main() {
	cfg := config.Load()
	utils.InitLogger(cfg.LogLevel)

	ctx := context.Background()

	c, err := container.New(ctx, cfg)
	if err != nil {
		utils.LogError(ctx, "failed to initialize services", err)
		os.Exit(1)
	}
	defer c.Close()

	srv := fiber.New(fiber.Config{
		AppName:      "beautymate",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	})

	app.SetupRoutes(srv, c)

	go func() {
		if err := srv.Listen(":" + cfg.Port); err != nil {
			utils.LogError(ctx, "server stopped", err)
			os.Exit(1)
		}
	}()

	utils.LogInfo(ctx, "server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.LogInfo(ctx, "shutting down")
	if err := srv.Shutdown(); err != nil {
		utils.LogError(ctx, "shutdown error", err)
	}
}
