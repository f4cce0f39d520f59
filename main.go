package main

import (
	"context"
	"log"

	"bloomsnursery/auth"
	"bloomsnursery/cloud"
	"bloomsnursery/config"
	"bloomsnursery/db"
	"bloomsnursery/routes"
	"bloomsnursery/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	stores := store.New(database)

	// First-run admin bootstrap
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if err := stores.Admins.Seed(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Fatal("Failed to seed admin account:", err)
		}
		log.Println("Admin account ensured for", cfg.AdminUsername)
	}

	var images cloud.ImageHost
	if cfg.CloudinaryConfigured() {
		images, err = cloud.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Fatal("Failed to initialize Cloudinary:", err)
		}
		log.Println("Image uploads going to Cloudinary")
	} else {
		images, err = cloud.NewDisk(cfg.UploadDir, "/uploads")
		if err != nil {
			log.Fatal("Failed to initialize upload directory:", err)
		}
		log.Println("Cloudinary not configured, storing uploads in", cfg.UploadDir)
	}

	mgr := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/uploads", "./"+cfg.UploadDir)

	routes.New(stores, mgr, images).Register(app)

	log.Fatal(app.Listen(":" + cfg.Port))
}
