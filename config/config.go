package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTKey     string
	SaltRound  int
}

var AppConfig Config

// LoadConfig reads .env when present and fills AppConfig with sane defaults.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	saltRound, err := strconv.Atoi(getEnv("SALT_ROUND", "10"))
	if err != nil {
		saltRound = 10
	}

	AppConfig = Config{
		Port:       getEnv("PORT", "5001"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "coursehub"),
		JWTKey:     getEnv("JWT_KEY", "dev-only-secret"),
		SaltRound:  saltRound,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
