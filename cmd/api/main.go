package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/etsiinf/carpool-backend/internal/database"
	"github.com/etsiinf/carpool-backend/internal/handlers"
	"github.com/etsiinf/carpool-backend/internal/services"
	"github.com/etsiinf/carpool-backend/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Get underlying SQL DB instance
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Initialize Redis
	if err := services.InitRedis(); err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}

	// Initialize Storage (S3 or local fallback)
	if err := services.InitStorage(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize WebSocket hub and cross-instance event fan-in
	hub := services.NewHub()
	go hub.Run()
	go services.SubscribeUserEvents(context.Background(), hub)

	s := store.NewStores(db)
	r := handlers.NewRouter(s, hub)

	// Serve locally stored avatars when S3 is not configured
	if !services.IsUsingS3() {
		uploadDir := os.Getenv("UPLOAD_DIR")
		if uploadDir == "" {
			uploadDir = "./uploads"
		}
		r.Static("/uploads", uploadDir)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
