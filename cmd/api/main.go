package main

import (
	"log"
	"os"
	"time"

	"github.com/SharpHawks/TireShop/internal/database"
	"github.com/SharpHawks/TireShop/internal/handlers"
	"github.com/SharpHawks/TireShop/internal/recommend"
	"github.com/SharpHawks/TireShop/internal/routes"
	"github.com/joho/godotenv"
)

func main() {
	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// --- Database Connection ---
	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// --- Database Health Monitoring ---
	// Constructed here and passed down; the handlers get the same instance
	// the background loop feeds.
	healthMonitor := database.NewHealthMonitor(db)
	healthMonitor.Run(30 * time.Second)
	defer healthMonitor.Stop()

	// --- Recommendation Service ---
	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		log.Fatal("CRITICAL ERROR: GEMINI_API_KEY environment variable is not set.")
	}

	aiService, err := recommend.NewService(geminiKey)
	if err != nil {
		log.Fatalf("Failed to initialize recommendation service: %v", err)
	}

	// --- Application Setup ---
	// We inject ALL dependencies (DB, AI service, health monitor) into the
	// Handlers struct.
	app := &handlers.Handlers{
		DB:     db,
		AI:     aiService,
		Health: healthMonitor,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting TireShop API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
