package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"bloomsnursery/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the database at dbPath, creating the file on first run, and
// migrates the schema. The returned handle is the process-wide pool and is
// injected into the stores.
func Connect(dbPath string) (*gorm.DB, error) {
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		log.Println("Database file does not exist, creating:", dbPath)
		file, err := os.Create(dbPath)
		if err != nil {
			return nil, fmt.Errorf("create database file: %w", err)
		}
		file.Close()
	}

	database, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	log.Println("Database connected successfully at", dbPath)

	if err := Migrate(database); err != nil {
		return nil, err
	}
	return database, nil
}

// Migrate keeps the schema in sync with the models.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.Category{}, &models.Product{}, &models.Featured{},
		&models.Customer{}, &models.Admin{},
	)
}
