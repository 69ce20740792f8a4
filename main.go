package main

import (
	"log"
	"time"

	"gradebook/config"
	"gradebook/database"
	authRoutes "gradebook/routers/authRoutes"
	courseRoutes "gradebook/routers/courseRoutes"
	"gradebook/service"
	"gradebook/store"
	"gradebook/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	if config.AppConfig.SeedDemo {
		if err := database.SeedDemo(db, config.AppConfig.SaltRound); err != nil {
			log.Fatalf("Demo seed failed: %v", err)
		}
	}

	sessions := store.NewSessionStore(time.Duration(config.AppConfig.SessionTTLMin) * time.Minute)
	catalog := store.NewCatalog(db)
	ledger := store.NewLedger(db)
	grades := store.NewGradeStore(db)
	svc := service.New(db, sessions, catalog, ledger, grades)

	sweeper := utils.StartSessionSweeper(sessions)
	defer sweeper.Stop()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the static front-end from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app, svc)
	courseRoutes.SetupCourseRoutes(app, svc)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
