package main

import (
	"log"
	"os"

	"coursehub/config"
	"coursehub/database"
	"coursehub/models"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the admin account and the base category set. Safe to re-run: rows
// that already exist are left untouched.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@coursehub.local"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "changeme-now"
	}

	var existing models.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), config.AppConfig.SaltRound)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}

		admin := models.User{
			Name:     "Platform Admin",
			Email:    adminEmail,
			Password: string(hashed),
			Role:     models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Created admin user %s", adminEmail)
	} else {
		log.Printf("Admin user %s already exists, skipping", adminEmail)
	}

	categories := []models.Category{
		{Name: "programming", Description: "Software development and computer science"},
		{Name: "design", Description: "Visual, product and UX design"},
		{Name: "business", Description: "Entrepreneurship, management and finance"},
		{Name: "marketing", Description: "Growth, advertising and communication"},
		{Name: "data-science", Description: "Analytics, machine learning and statistics"},
	}

	for _, category := range categories {
		var found models.Category
		if err := db.Where("name = ?", category.Name).First(&found).Error; err == nil {
			continue
		}
		if err := db.Create(&category).Error; err != nil {
			log.Fatalf("Failed to seed category %s: %v", category.Name, err)
		}
		log.Printf("Seeded category %s", category.Name)
	}

	log.Println("Seeding completed")
}
