// Package config reads settings from the process environment, with an
// optional .env file for local development.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBPath    string
	UploadDir string

	JWTSecret string
	TokenTTL  time.Duration

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	AdminUsername string
	AdminPassword string
}

// Load reads the environment. Missing keys fall back to development
// defaults; production deployments set everything explicitly.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	return Config{
		Port:      getenv("PORT", "3000"),
		DBPath:    getenv("DB_PATH", "database.db"),
		UploadDir: getenv("UPLOAD_DIR", "uploads"),

		JWTSecret: getenv("JWT_SECRET", "blooms_nursery_admin_secret_key"),
		TokenTTL:  time.Duration(getenvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

// CloudinaryConfigured reports whether all Cloudinary credentials are set.
func (c Config) CloudinaryConfigured() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
