package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/leewillemse/portfolio-backend/internal/config"
	"github.com/leewillemse/portfolio-backend/internal/database"
	"github.com/leewillemse/portfolio-backend/internal/handlers"
	"github.com/leewillemse/portfolio-backend/internal/middleware"
	"github.com/leewillemse/portfolio-backend/internal/routes"
	"github.com/leewillemse/portfolio-backend/internal/store"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	handlers.InitStore(store.NewMongoStore(database.DB))

	// Redis backs the rate limiter only; the limiter fails open without it
	if cfg.RedisURI != "" {
		log.Printf("Connecting to Redis...")
		if err := database.ConnectRedis(cfg.RedisURI); err != nil {
			log.Printf("⚠️  WARNING: Redis unavailable, rate limiting disabled: %v", err)
		} else {
			defer database.DisconnectRedis()
		}
	} else {
		log.Println("REDIS_URI not set, rate limiting disabled")
	}

	// Cloudinary backs the asset upload endpoint
	if cfg.CloudinaryName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		if err := handlers.InitCloudinaryService(cfg); err != nil {
			log.Printf("Warning: Failed to initialize Cloudinary: %v", err)
			log.Println("Asset uploads will not be available")
		} else {
			log.Println("✅ Cloudinary service initialized")
		}
	} else {
		log.Println("Warning: Cloudinary credentials not found. Asset uploads will not be available")
	}

	if cfg.AdminKeyHash == "" {
		log.Println("⚠️  WARNING: ADMIN_KEY_HASH not set. Mutating endpoints are unauthenticated.")
	}

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimit)
	r.Use(middleware.AdminAuth(cfg.AdminKeyHash))

	// Health check (plain text, no JSON body)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r)

	log.Printf("🚀 Portfolio backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
