package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Verdant-Commerce/verdant-storefront-backend/config"
	"github.com/Verdant-Commerce/verdant-storefront-backend/routes/admin_routes"
	"github.com/Verdant-Commerce/verdant-storefront-backend/routes/storefront_routes"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis connection (rate limiter, sessions, preferences, activity log)
	config.ConnectRedis()

	// External catalog + checkout endpoints
	config.InitExternalServices()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsCfg.AllowOrigins = []string{origins}
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	storefront_routes.SetupProductRoutes(api)
	storefront_routes.SetupAuthRoutes(api)
	storefront_routes.SetupCartRoutes(api)
	storefront_routes.SetupPreferenceRoutes(api)
	log.Println("✅ Storefront routes registered")

	admin_routes.SetupAnalyticsRoutes(api)
	log.Println("✅ Admin routes registered")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	log.Printf("🚀 Verdant storefront API listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
