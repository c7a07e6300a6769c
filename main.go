package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"kcpos/config"
	"kcpos/database"
	"kcpos/handlers"
	"kcpos/middleware"
	"kcpos/routes"
	"kcpos/store"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	config.AppConfig.Port = os.Getenv("PORT")
	if config.AppConfig.Port == "" {
		config.AppConfig.Port = "3000"
	}
	config.AppConfig.DatabaseURL = os.Getenv("DATABASE_URL")

	// Set up the state container. With a database the collections are
	// hydrated from Postgres; without one the seeded demo dataset is used.
	var st *store.Store
	if config.AppConfig.DatabaseURL != "" {
		database.Connect(config.AppConfig.DatabaseURL)
		defer database.Close()

		ctx := context.Background()
		if err := store.EnsureSchema(ctx, database.GetDB()); err != nil {
			log.Fatalf("Schema setup failed: %v", err)
		}
		st = store.New()
		if err := store.Hydrate(ctx, database.GetDB(), st); err != nil {
			log.Fatalf("Failed to hydrate store from database: %v", err)
		}
		log.Println("Store hydrated from database")
	} else {
		log.Println("DATABASE_URL not set, using in-memory demo data")
		st = store.NewSeeded()
	}
	handlers.SetStore(st)

	app := fiber.New()

	// Add CORS and request logging middleware
	app.Use(cors.New())
	app.Use(middleware.RequestLogger)

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
