package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"practice/cmd/migration/seed"
	"practice/internal/app"
	"practice/internal/handlers"
	"practice/internal/logger"

	"github.com/gofiber/fiber/v2"
)

func main() {
	log := logger.New("main")

	app, err := app.New()
	if err != nil {
		log.Er("failed to initialize app", err)
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Er("failed to close app", err)
		}
	}()

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := seed.Seed(context.Background(), app, log); err != nil {
			log.Er("failed to seed data", err)
			os.Exit(1)
		}
		return
	}

	server := fiber.New(fiber.Config{
		AppName: "practice",
	})

	app.Middleware.Register(server)

	if err := handlers.Router(server, app); err != nil {
		log.Er("failed to register routes", err)
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-shutdown
		log.Info("Shutting down server")
		if err := server.Shutdown(); err != nil {
			log.Er("failed to shut down server", err)
		}
	}()

	address := fmt.Sprintf(":%d", app.Config.ServerPort)
	log.Info("Starting server", "address", address)
	if err := server.Listen(address); err != nil {
		log.Er("server stopped", err)
		os.Exit(1)
	}
}
