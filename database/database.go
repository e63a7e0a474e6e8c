package database

import (
	"fmt"
	"log"

	"coursehub/config"
	"coursehub/models"
	course "coursehub/models/course"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type DbInstance struct {
	Db *gorm.DB
}

var Database DbInstance

// ConnectDb opens the Postgres connection and runs migrations. TranslateError
// lets callers match duplicate key violations as gorm.ErrDuplicatedKey.
func ConnectDb() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		config.AppConfig.DBHost,
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBName,
		config.AppConfig.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Activity{},
		&course.Course{},
		&course.Section{},
		&course.Lesson{},
		&course.Enrollment{},
		&course.Transaction{},
		&course.Review{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	Database = DbInstance{Db: db}
}
