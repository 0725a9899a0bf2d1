package db

import (
	"log"
	"os"

	"agora/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=agora port=5432 sslmode=disable"
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Database connection established")

	if err := Use(gdb); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedCategories()
}

// Use installs gdb as the shared handle and runs migrations. Tests call this
// with an in-memory database.
func Use(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Thread{},
		&models.Comment{},
		&models.Vote{},
		&models.Reaction{},
		&models.Notification{},
		&models.Follow{},
		&models.Bookmark{},
		&models.Watcher{},
		&models.ReputationLog{},
	); err != nil {
		return err
	}
	DB = gdb
	return nil
}

func seedCategories() {
	var count int64
	DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		log.Println("Categories already seeded, skipping")
		return
	}

	categories := []models.Category{
		{Name: "General", Slug: "general", Description: "General discussion", Icon: "💬", Color: "#6b7280"},
		{Name: "Technology", Slug: "technology", Description: "Programming, hardware and everything in between", Icon: "💻", Color: "#3b82f6"},
		{Name: "Show & Tell", Slug: "show-and-tell", Description: "Share what you are working on", Icon: "🚀", Color: "#f59e0b"},
		{Name: "Help", Slug: "help", Description: "Questions and answers", Icon: "❓", Color: "#10b981"},
	}

	for _, category := range categories {
		if err := DB.Create(&category).Error; err != nil {
			log.Printf("Failed to create category %s: %v", category.Name, err)
		}
	}
	log.Println("Initial categories created")
}
